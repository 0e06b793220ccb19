package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SDRPARAMS_CONFIG", "")
	t.Setenv("SDRPARAMS_LOG_LEVEL", "error")

	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := runArgs(t)
	if err != nil {
		t.Fatalf("run() error = %v\n%s", err, out)
	}

	want := []string{
		"ch0_frequency -> 446500000",
		"ch0_frequency <= 440000000 Ok..",
		"ch0_frequency -> 440000000",
		"ch0_frequency <= Mooo failed (CONVERSION_ERROR)",
		"-- Error Message: key datatype is not a string: ch0_frequency",
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Errorf("Output missing %q:\n%s", line, out)
		}
	}
}

func TestSetAndGet(t *testing.T) {
	out, err := runArgs(t,
		"--set", "ch1_tx_gain=12.5",
		"--set", "ch1_tx_enabled=True",
		"--get", "ch1_tx_gain",
		"--get", "ch1_tx_enabled",
	)
	if err != nil {
		t.Fatalf("run() error = %v\n%s", err, out)
	}

	for _, line := range []string{
		"ch1_tx_gain <= 12.5 Ok..",
		"ch1_tx_enabled <= true Ok..",
		"ch1_tx_gain -> 12.5",
		"ch1_tx_enabled -> true",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("Output missing %q:\n%s", line, out)
		}
	}
	if strings.Contains(out, "446500000") {
		t.Errorf("Demo should not run when operations are requested:\n%s", out)
	}
}

func TestRejectedOperationsFail(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "range", args: []string{"--set", "ch0_tx_gain=1000"}, want: "failed (RANGE_ERROR)"},
		{name: "unknown key", args: []string{"--get", "ch3_frequency"}, want: "unknown key: ch3_frequency"},
		{name: "type mismatch", args: []string{"--set", "ch0_rx_enabled=1"}, want: "failed (CONVERSION_ERROR)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runArgs(t, tt.args...)
			if !errors.Is(err, errFailed) {
				t.Fatalf("run() error = %v, want errFailed", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestBadSetSyntax(t *testing.T) {
	_, err := runArgs(t, "--set", "ch0_tx_gain")
	if err == nil || errors.Is(err, errFailed) {
		t.Errorf("Expected syntax error, got %v", err)
	}
}

func TestList(t *testing.T) {
	out, err := runArgs(t, "--list")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 22 {
		t.Fatalf("Expected 22 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "[-2, 60]") || !strings.Contains(out, "[70000000, 6000000000]") {
		t.Errorf("Expected bounds in listing:\n%s", out)
	}
}

func TestConfigParameters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radio.yaml")
	content := "parameters:\n  ch0_frequency: 915000000\n  ch0_tx_gain: 200\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runArgs(t, "--config", path, "--get", "ch0_frequency")
	if !errors.Is(err, errFailed) {
		t.Fatalf("Expected rejected config parameter to fail the run, got %v", err)
	}
	if !strings.Contains(out, "config ch0_tx_gain failed (RANGE_ERROR)") {
		t.Errorf("Output missing rejected config parameter:\n%s", out)
	}
	if !strings.Contains(out, "ch0_frequency -> 915000000") {
		t.Errorf("Config value not applied:\n%s", out)
	}
}

func TestInferValue(t *testing.T) {
	tests := []struct {
		raw  string
		want interface{}
	}{
		{raw: "true", want: true},
		{raw: "False", want: false},
		{raw: "TRUE", want: "TRUE"},
		{raw: "440e6", want: 440e6},
		{raw: "-2", want: -2.0},
		{raw: "Mooo", want: "Mooo"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := inferValue(tt.raw); got != tt.want {
				t.Errorf("inferValue(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	out, err := runArgs(t, "--help")
	if err != nil {
		t.Fatalf("run(--help) error = %v", err)
	}
	if !strings.Contains(out, "--set") {
		t.Errorf("Usage missing flags:\n%s", out)
	}
}
