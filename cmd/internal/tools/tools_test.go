package tools

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nathanhack/matrixsteg/benchmarking"
	"github.com/nathanhack/matrixsteg/gf2"
)

func TestSaveLoadResults(t *testing.T) {
	tests := []struct {
		name string
	}{
		{"results.json"},
		{"results.json.zst"},
	}
	dir := t.TempDir()
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var stats benchmarking.Stats
			stats.ChannelNibbleError.Update(0.5)
			stats.ChannelNibbleError.Update(0.25)

			expected := &SimulationStats{
				TypeInfo:   "BSC:test",
				ParityInfo: Md5Sum(gf2.ParityMatrix()),
				Stats:      map[float64]benchmarking.Stats{0.05: stats},
			}

			path := filepath.Join(dir, test.name)
			if err := SaveResults(path, expected); err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}

			actual, err := LoadResults(path)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if actual.TypeInfo != expected.TypeInfo || actual.ParityInfo != expected.ParityInfo {
				t.Fatalf("expected %v but found %v", expected, actual)
			}
			if actual.Stats[0.05].ChannelNibbleError.Count != 2 {
				t.Fatalf("expected 2 samples but found %v", actual.Stats[0.05].ChannelNibbleError.Count)
			}
		})
	}
}

func TestLoadResultsMissing(t *testing.T) {
	actual, err := LoadResults(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil || actual != nil {
		t.Fatalf("expected nil, nil but found %v, %v", actual, err)
	}
}
