package striderctl

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("striderctl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"stand"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.RobotAddr != "127.0.0.1:50051" {
		t.Fatalf("expected default robot addr, got %q", cfg.RobotAddr)
	}
	if cfg.LeaseResource != "body" {
		t.Fatalf("expected default lease resource body, got %q", cfg.LeaseResource)
	}
	if cfg.CommandTimeout != 30*time.Second {
		t.Fatalf("expected default command timeout 30s, got %v", cfg.CommandTimeout)
	}
	if cfg.Action != "stand" {
		t.Fatalf("expected action stand, got %q", cfg.Action)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("STRIDER_ROBOT_ADDR", "10.0.0.3:443")
	t.Setenv("STRIDER_COMMAND_TIMEOUT", "45s")

	fs := flag.NewFlagSet("striderctl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-robot-addr", "10.0.0.9:443", "sit"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.RobotAddr != "10.0.0.9:443" {
		t.Fatalf("expected flag override, got %q", cfg.RobotAddr)
	}
	if cfg.CommandTimeout != 45*time.Second {
		t.Fatalf("expected env command timeout 45s, got %v", cfg.CommandTimeout)
	}
	if cfg.Action != "sit" {
		t.Fatalf("expected action sit, got %q", cfg.Action)
	}
}

func TestParseConfigRequiresAction(t *testing.T) {
	fs := flag.NewFlagSet("striderctl", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error when no action is given")
	}
}
