package main

import (
	"strings"
	"testing"
)

func TestRunReturnsListenError(t *testing.T) {
	t.Setenv("RELAY_ADDRESS", "127.0.0.1:-1")
	t.Setenv("RELAY_LOG_LEVEL", "error")

	err := run()
	if err == nil || !strings.HasPrefix(err.Error(), "server:") {
		t.Fatalf("expected server error from run, got %v", err)
	}
}
