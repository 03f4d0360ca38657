// Package benchmarking simulates what happens to hidden nibbles when the low order bits
// of a stego image go through a noisy channel (recompression, bit rot, tampering).
package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/matrixsteg/window"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
)

type Stats struct {
	EmbeddingChangeRate avgstd.AvgStd // fraction of window bits flipped by embedding
	ChannelNibbleError  avgstd.AvgStd // fraction of nibble bits wrong after the channel
	ChannelWindowError  avgstd.AvgStd // fraction of window bits flipped by the channel
}

func (s Stats) String() string {
	return fmt.Sprintf("{Embedding:%0.02f(+/-%0.02f), Nibble:%0.02f(+/-%0.02f), Window:%0.02f(+/-%0.02f)}",
		s.EmbeddingChangeRate.Mean, math.Sqrt(s.EmbeddingChangeRate.SampledVariance()),
		s.ChannelNibbleError.Mean, math.Sqrt(s.ChannelNibbleError.SampledVariance()),
		s.ChannelWindowError.Mean, math.Sqrt(s.ChannelWindowError.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

// WindowConstructor returns the cover window and the nibble to hide for a trial.
type WindowConstructor func(trial int) (cover mat.SparseVector, nibble mat.SparseVector)

// BinarySymmetricChannel returns a copy of the stego window with channel induced flips.
type BinarySymmetricChannel func(stego mat.SparseVector) (channelInduced mat.SparseVector)

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createWindow WindowConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createWindow, channel, checkpoints, Stats{}, showProgress)
}

// BenchmarkBSCContinueStats runs trials until previousStats holds trials samples.
func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createWindow WindowConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelNibbleError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		cover, nibble := createWindow(i)

		// hide the nibble
		stego := window.EmbedNibble(cover, nibble)

		// send through the channel
		channelInduced := channel(stego)

		// and read it back
		extracted := window.ExtractNibble(channelInduced)

		embeddingChange := float64(cover.HammingDistance(stego)) / float64(window.Length)
		nibbleError := float64(extracted.HammingDistance(nibble)) / float64(window.NibbleLength)
		windowError := float64(stego.HammingDistance(channelInduced)) / float64(window.Length)

		statsMux.Lock()
		previousStats.EmbeddingChangeRate.Update(embeddingChange)
		previousStats.ChannelNibbleError.Update(nibbleError)
		previousStats.ChannelWindowError.Update(windowError)
		if checkpoints != nil {
			checkpoints(previousStats)
		}
		statsMux.Unlock()
	}

	for i := previousStats.ChannelNibbleError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}
