package gammatone

import (
	"testing"

	"github.com/cwbudde/algo-gammatone/internal/testutil"
)

func BenchmarkProcess(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 16000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Process(x, 16000, 1000); err != nil {
			b.Fatalf("Process() error = %v", err)
		}
	}
}

func BenchmarkProcessInto(b *testing.B) {
	f, err := New(16000, 1000)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	x := testutil.DeterministicNoise(1, 1, 16000)
	var out Output

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.ProcessInto(&out, x); err != nil {
			b.Fatalf("ProcessInto() error = %v", err)
		}
	}
}
