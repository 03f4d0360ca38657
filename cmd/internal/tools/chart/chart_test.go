package chart

import (
	"reflect"
	"testing"

	"github.com/nathanhack/matrixsteg/benchmarking"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools"
)

func TestXAxisAndValues(t *testing.T) {
	nums, strs := xAxisAndValues(map[float64]bool{0.5: true, 0.01: true, 0.1: true})

	if expected := []float64{0.01, 0.1, 0.5}; !reflect.DeepEqual(nums, expected) {
		t.Fatalf("expected %v but found %v", expected, nums)
	}
	if expected := []string{"0.01", "0.1", "0.5"}; !reflect.DeepEqual(strs, expected) {
		t.Fatalf("expected %v but found %v", expected, strs)
	}
}

func TestSeries(t *testing.T) {
	var s benchmarking.Stats
	s.ChannelNibbleError.Update(0.25)
	stat := &tools.SimulationStats{Stats: map[float64]benchmarking.Stats{0.1: s}}

	actual := series(stat, []float64{0.01, 0.1})
	if actual[0].Value != nil {
		t.Fatalf("expected missing value to be nil but found %v", actual[0].Value)
	}
	if actual[1].Value != 0.25 {
		t.Fatalf("expected 0.25 but found %v", actual[1].Value)
	}
}
