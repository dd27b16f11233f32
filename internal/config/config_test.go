package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level %q, got %q", "warn", cfg.LogLevel)
	}
	if cfg.Mode != ModeAuto {
		t.Errorf("expected mode %q, got %q", ModeAuto, cfg.Mode)
	}
	if cfg.BarWidth != 30 {
		t.Errorf("expected bar width 30, got %d", cfg.BarWidth)
	}
	if cfg.NoPause {
		t.Error("expected pause to be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TERMVIZ_LOG_LEVEL", "debug")
	t.Setenv("TERMVIZ_MODE", " TEXT ")
	t.Setenv("TERMVIZ_BAR_WIDTH", "50")
	t.Setenv("TERMVIZ_NO_PAUSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Mode != ModeText || cfg.BarWidth != 50 || !cfg.NoPause {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadClampsBarWidth(t *testing.T) {
	t.Setenv("TERMVIZ_BAR_WIDTH", "-4")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BarWidth != 30 {
		t.Fatalf("expected bar width reset to 30, got %d", cfg.BarWidth)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("TERMVIZ_BAR_WIDTH", "wide")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr bool
	}{
		{Config{Mode: ModeAuto, BarWidth: 30}, false},
		{Config{Mode: ModeText, BarWidth: 1}, false},
		{Config{Mode: ModeGraphical, BarWidth: 30}, false},
		{Config{Mode: "ascii", BarWidth: 30}, true},
		{Config{Mode: ModeText, BarWidth: 0}, true},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v): wantErr=%v, got %v", tt.cfg, tt.wantErr, err)
		}
	}
}

// TestExitf_ExitsWithCode1 runs Exitf in a subprocess because os.Exit cannot
// be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", string(out))
	}
}
