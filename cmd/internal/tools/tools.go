package tools

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/nathanhack/matrixsteg/benchmarking"
	mat "github.com/nathanhack/sparsemat"
)

type SimulationStats struct {
	TypeInfo   string
	ParityInfo string
	Stats      map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo   string
	ParityInfo string
	Stats      map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo:   s.TypeInfo,
		ParityInfo: s.ParityInfo,
		Stats:      map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ParityInfo = ss.ParityInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

// compressed results files end in .zst
func compressed(filepath string) bool {
	return strings.HasSuffix(filepath, ".zst")
}

// LoadResults returns nil, nil when filepath does not exist yet.
func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	if compressed(filepath) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		bs, err = dec.DecodeAll(bs, nil)
		if err != nil {
			return nil, fmt.Errorf("error while decompressing file %v: %w", filepath, err)
		}
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	if compressed(filepath) {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return err
		}
		bs = enc.EncodeAll(bs, nil)
		if err := enc.Close(); err != nil {
			return err
		}
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}
