package commands

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint16
		wantErr bool
	}{
		{name: "valid port", input: "22", want: 22},
		{name: "upper bound", input: "65535", want: 65535},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "too large", input: "65536", wantErr: true},
		{name: "non-numeric", input: "ssh", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePort(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeout(t *testing.T) {
	logger = logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	fallback := 10 * time.Second

	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "valid", input: "5", want: 5 * time.Second},
		{name: "explicit zero is honoured", input: "0", want: 0},
		{name: "non-numeric falls back", input: "soon", want: fallback},
		{name: "negative falls back", input: "-3", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTimeout(tt.input, fallback))
		})
	}
}
