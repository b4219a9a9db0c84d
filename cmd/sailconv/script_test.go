package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hammamikhairi/sailconv/internal/config"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

func runTestScript(t *testing.T, script string, trace bool) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := runScript(strings.NewReader(script), &out, config.Default(), logger.New(logger.LevelOff, nil), trace)
	return out.String(), err
}

func TestScriptSpeedConversion(t *testing.T) {
	out, err := runTestScript(t, `
# m/s to km/h
light 3
digits 0036
show
`, false)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	if out != "Res = |   130\n" {
		t.Fatalf("unexpected transcript %q", out)
	}
}

func TestScriptBeaufort(t *testing.T) {
	out, err := runTestScript(t, `
light
alarm 3   # m/s -> bft
light
show
light
digits 10
show
`, false)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 frames, got %q", out)
	}
	if lines[0] != " to   |  m/s" {
		t.Errorf("target frame %q", lines[0])
	}
	if lines[1] != "Res = |   003" {
		t.Errorf("result frame %q", lines[1])
	}
}

func TestScriptTraceAndQuit(t *testing.T) {
	out, err := runTestScript(t, "light\nquit\nlight\n", true)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	if out != "light            Frm   |  m/s\n" {
		t.Fatalf("unexpected trace %q", out)
	}
}

func TestScriptErrorsCarryLine(t *testing.T) {
	_, err := runTestScript(t, "light\nfly\n", false)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
}
