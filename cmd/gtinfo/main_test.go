package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-gammatone/dsp/filter/gammatone"
)

func TestResolveCenters(t *testing.T) {
	got, err := resolveCenters(nil, 0, 0, 0, 16000)
	if err != nil {
		t.Fatalf("resolveCenters() error = %v", err)
	}
	if len(got) != len(defaultCenters) {
		t.Fatalf("defaults len = %d, want %d", len(got), len(defaultCenters))
	}

	got, err = resolveCenters([]string{"500", " 1000.5"}, 0, 0, 0, 16000)
	if err != nil {
		t.Fatalf("resolveCenters() error = %v", err)
	}
	if len(got) != 2 || got[0] != 500 || got[1] != 1000.5 {
		t.Fatalf("resolveCenters() = %v", got)
	}

	if _, err := resolveCenters([]string{"1k"}, 0, 0, 0, 16000); err == nil {
		t.Fatal("expected error for non-numeric frequency")
	}
}

func TestERBSpaced(t *testing.T) {
	got, err := erbSpaced(100, 4000, 8)
	if err != nil {
		t.Fatalf("erbSpaced() error = %v", err)
	}
	if math.Abs(got[0]-100) > 1e-9 || math.Abs(got[7]-4000) > 1e-6 {
		t.Fatalf("endpoints = %g, %g", got[0], got[7])
	}

	step := gammatone.ERBRate(got[1]) - gammatone.ERBRate(got[0])
	for i := 2; i < len(got); i++ {
		if d := gammatone.ERBRate(got[i]) - gammatone.ERBRate(got[i-1]); math.Abs(d-step) > 1e-9 {
			t.Fatalf("ERB-rate step %d = %g, want %g", i, d, step)
		}
	}

	if _, err := erbSpaced(1000, 500, 4); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	if err := printTable(&buf, 16000, 8192, []float64{1000, 9000}); err != nil {
		t.Fatalf("printTable() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "1000.00") || !strings.Contains(lines[2], "132.639") {
		t.Fatalf("row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "invalid parameter") {
		t.Fatalf("cf above Nyquist should report error, got %q", lines[3])
	}
}
