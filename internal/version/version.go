package version

// Version is the current tcpconnect version
const Version = "0.99.0"
