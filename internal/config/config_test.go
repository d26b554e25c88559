package config

import "testing"

func TestNewReadsLogLevel(t *testing.T) {
	t.Setenv("LOGLEVEL", "debug")
	if got := New().LogLevel; got != "debug" {
		t.Fatalf("LogLevel = %q, want %q", got, "debug")
	}
}

func TestNewDefaultsLogLevel(t *testing.T) {
	t.Setenv("LOGLEVEL", "")
	if got := New().LogLevel; got != "warn" {
		t.Fatalf("LogLevel = %q, want %q", got, "warn")
	}
}
