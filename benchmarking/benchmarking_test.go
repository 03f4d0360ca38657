package benchmarking

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/nathanhack/matrixsteg/gf2"
	"github.com/nathanhack/matrixsteg/window"
	mat "github.com/nathanhack/sparsemat"
)

// every window is tried with all 16 nibbles, exactly one of them needs no flip
func exhaustiveNibbles(trial int) (mat.SparseVector, mat.SparseVector) {
	return gf2.IndexToBits(trial/16, window.Length), gf2.IndexToBits(trial%16, window.NibbleLength)
}

func ExampleBenchmarkBSC() {
	channel := func(stego mat.SparseVector) mat.SparseVector {
		return mat.CSRVecCopy(stego)
	}

	stats := BenchmarkBSC(context.Background(), 16*64, 1, exhaustiveNibbles, channel, nil, false)

	fmt.Println("Noiseless channel :", stats)
	//Output:
	// Noiseless channel : {Embedding:0.06(+/-0.02), Nibble:0.00(+/-0.00), Window:0.00(+/-0.00)}
}

func TestBenchmarkBSCSingleFlip(t *testing.T) {
	// a single flipped window bit always corrupts the nibble since every column of H is nonzero
	channel := func(stego mat.SparseVector) mat.SparseVector {
		return RandomFlipBitCount(stego, 1)
	}

	checkpoints := 0
	stats := BenchmarkBSC(context.Background(), 320, 0, exhaustiveNibbles, channel, func(Stats) { checkpoints++ }, false)

	if stats.ChannelNibbleError.Count != 320 || checkpoints != 320 {
		t.Fatalf("expected 320 trials but found %v (%v checkpoints)", stats.ChannelNibbleError.Count, checkpoints)
	}
	if stats.ChannelNibbleError.Mean < 0.25 {
		t.Fatalf("expected every trial to lose at least one nibble bit but found mean %v", stats.ChannelNibbleError.Mean)
	}
	if expected := 1.0 / float64(window.Length); math.Abs(stats.ChannelWindowError.Mean-expected) > 1e-9 {
		t.Fatalf("expected %v but found %v", expected, stats.ChannelWindowError.Mean)
	}
}

func TestBenchmarkBSCContinueStats(t *testing.T) {
	channel := func(stego mat.SparseVector) mat.SparseVector {
		return RandomFlipProbability(stego, 0.1)
	}
	first := BenchmarkBSC(context.Background(), 100, 1, exhaustiveNibbles, channel, nil, false)
	second := BenchmarkBSCContinueStats(context.Background(), 250, 1, exhaustiveNibbles, channel, nil, first, false)
	if second.ChannelNibbleError.Count != 250 {
		t.Fatalf("expected 250 but found %v", second.ChannelNibbleError.Count)
	}

	// nothing left to run
	third := BenchmarkBSCContinueStats(context.Background(), 200, 1, exhaustiveNibbles, channel, nil, second, false)
	if third.ChannelNibbleError.Count != 250 {
		t.Fatalf("expected 250 but found %v", third.ChannelNibbleError.Count)
	}
}

func TestRandomFlipProbability(t *testing.T) {
	tests := []struct {
		p        float64
		expected int
	}{
		{0, 0},
		{1, 15},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			input := RandomMessage(15)
			actual := RandomFlipProbability(input, test.p)
			if d := actual.HammingDistance(input); d != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, d)
			}
		})
	}
}
