package bsc

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/matrixsteg/benchmarking"
	"github.com/nathanhack/matrixsteg/cmd/internal/interrupt"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools"
	"github.com/nathanhack/matrixsteg/gf2"
	"github.com/nathanhack/matrixsteg/window"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	FlipCounts       []int
	Threads          uint
)

// simulation runs one channel setting, key is the crossover probability or the flip count.
type simulation func(ctx context.Context,
	key float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats

// RunBSC hides random nibbles in random windows, flips every stego bit with
// crossoverProbability and measures how many nibble bits survive.
func RunBSC(ctx context.Context,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	channel := func(stego mat.SparseVector) mat.SparseVector {
		return benchmarking.RandomFlipProbability(stego, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, randomWindow, channel, checkpoints, previousStats, showProgress)
}

// RunFixedFlips is RunBSC with exactly flips stego bits flipped in every trial.
func RunFixedFlips(ctx context.Context,
	flips, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	channel := func(stego mat.SparseVector) mat.SparseVector {
		return benchmarking.RandomFlipBitCount(stego, flips)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, randomWindow, channel, checkpoints, previousStats, showProgress)
}

func randomWindow(trial int) (mat.SparseVector, mat.SparseVector) {
	return benchmarking.RandomMessage(window.Length), benchmarking.RandomMessage(window.NibbleLength)
}

func bscSimulation(ctx context.Context, key float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints, showProgress bool) benchmarking.Stats {
	return RunBSC(ctx, key, trials, threads, previousStats, checkpoints, showProgress)
}

func flipsSimulation(ctx context.Context, key float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints, showProgress bool) benchmarking.Stats {
	return RunFixedFlips(ctx, int(key), trials, threads, previousStats, checkpoints, showProgress)
}

var BscRun = func(cmd *cobra.Command, args []string) error {
	kind, keys, simulate, err := channelSettings(ErrorProbability, FlipCounts)
	if err != nil {
		return err
	}

	parityInfo := tools.Md5Sum(gf2.ParityMatrix())

	//we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadResults(args[0])
	if err != nil {
		return err
	}

	if data == nil {
		data = &tools.SimulationStats{
			TypeInfo:   typeInfo(kind),
			ParityInfo: parityInfo,
			Stats:      make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo(kind) {
		return fmt.Errorf("results loaded do not match the type expected %v but found %v", typeInfo(kind), data.TypeInfo)
	}
	if data.ParityInfo != parityInfo {
		return fmt.Errorf("results loaded do not match the parity matrix")
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	runSimulation(ctx, data, args[0], keys, simulate)

	return tools.SaveResults(args[0], data)
}

// channelSettings picks fixed flip counts when any are given, crossover probabilities otherwise.
func channelSettings(probabilities []float64, flipCounts []int) (kind string, keys []float64, simulate simulation, err error) {
	if len(flipCounts) > 0 {
		for _, f := range flipCounts {
			if f < 0 || f > window.Length {
				return "", nil, nil, fmt.Errorf("flip count must be in [0, %v] but found %v", window.Length, f)
			}
			keys = append(keys, float64(f))
		}
		return "FLIPS", keys, flipsSimulation, nil
	}

	for _, p := range probabilities {
		if p < 0 || p > 1 {
			return "", nil, nil, fmt.Errorf("crossover probability must be in [0, 1] but found %v", p)
		}
	}
	return "BSC", probabilities, bscSimulation, nil
}

func typeInfo(kind string) string {
	t := reflect.TypeOf(benchmarking.Stats{})
	return fmt.Sprintf("%v:%v/%v", kind, t.PkgPath(), t.Name())
}

func runSimulation(ctx context.Context, data *tools.SimulationStats, outputFilename string, keys []float64, simulate simulation) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThread := int(Threads)
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}

	trialsPerIter := numberOfThread * 10
	bar := pb.StartNew(int(Trials) * len(keys))
trialLoops:
	for t := trialsPerIter; t < int(Trials)+trialsPerIter; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range keys {
			checkpoint := func(stats benchmarking.Stats) {
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := tools.SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}
			before := data.Stats[p].ChannelNibbleError.Count
			data.Stats[p] = simulate(ctx, p, min(t, int(Trials)), numberOfThread, data.Stats[p], checkpoint, false)
			bar.Add(data.Stats[p].ChannelNibbleError.Count - before)
		}
	}
	bar.Finish()
}
