package commands

import (
	"io"
	"os"

	"tcpconnect/internal/config"
	"tcpconnect/internal/version"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	cfgManager *config.Manager
	logger     *logrus.Logger
	configFile string
	logLevel   string
	network    string
)

// rootCmd represents the base command; without a subcommand it performs the
// connection check itself
var rootCmd = &cobra.Command{
	Use:   "tcpconnect <host> <port> [timeout-seconds]",
	Short: "Check connections to generic TCP servers",
	Long: `tcpconnect v` + version.Version + `

A simple utility for checking connections to generic TCP servers.
Exits 0 when the handshake completes, 1 otherwise.`,
	Example: `  tcpconnect 172.16.10.13 22
  tcpconnect pseudo 8888 5`,
	Args: cobra.RangeArgs(2, 3),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initialiseTool()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Set default values
	configFile = config.DefaultConfigFile
	logLevel = config.DefaultLogLevel

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", configFile, "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&network, "network", "", "address family preference (tcp, tcp4, tcp6)")

	// Add all subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(diagnosticsCmd)
	rootCmd.AddCommand(versionCmd)
}

// initialiseTool initialises the configuration manager and logger
func initialiseTool() {
	// Initialise logger
	logger = logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02T15:04:05",
	})

	// Set log level
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Initialise configuration manager
	cfgManager = config.New()
	cfgManager.SetConfigFile(configFile)
	cfgManager.GetConfig().LogLevel = logLevel

	// Load configuration
	if err := cfgManager.LoadConfig(); err != nil {
		logger.Warnf("Failed to load config: %v", err)
	}

	cfg := cfgManager.GetConfig()

	// Update log level from config if it was loaded
	if cfg.LogLevel != "" {
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(level)
		}
	}

	// Tee log output into a rotating log file when one is configured
	if cfg.LogFile != "" {
		logger.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}))
	}
}
