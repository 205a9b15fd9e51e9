package utils

import (
	"os"
	"os/exec"
	"slices"
	"strings"
)

func GetKernelVersion() (string, error) {
	if data, err := os.ReadFile("/proc/version"); err == nil {
		fields := slices.Collect(strings.FieldsSeq(string(data)))
		if len(fields) >= 3 {
			return fields[2], nil
		}
	}

	// Fallback to uname
	output, err := exec.Command("uname", "-r").Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(output)), nil
}
