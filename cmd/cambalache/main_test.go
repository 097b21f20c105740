package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c05m4r/cambalache/internal/config"
	"github.com/c05m4r/cambalache/internal/output"
	"github.com/c05m4r/cambalache/internal/template"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config error", &config.ConfigError{Reason: "bad flags"}, exitConfig},
		{"load error", &template.LoadError{Reason: "bad template"}, exitLoad},
		{"write error", &output.WriteError{Path: "out.json", Err: fmt.Errorf("denied")}, exitWrite},
		{"wrapped config error", fmt.Errorf("run failed: %w", &config.ConfigError{Reason: "x"}), exitConfig},
		{"unexpected error", fmt.Errorf("boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExitCodesAreDistinctAndNonZero(t *testing.T) {
	codes := []int{exitFailure, exitConfig, exitLoad, exitWrite}
	seen := make(map[int]bool)
	for _, code := range codes {
		assert.NotZero(t, code)
		assert.False(t, seen[code], "exit code %d reused", code)
		seen[code] = true
	}
}
