package analysis

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/nathanhack/matrixsteg/pixelgrid"
	"github.com/nathanhack/matrixsteg/stego"
)

func TestCompareIdentical(t *testing.T) {
	g := pixelgrid.New(4, 4)
	report, err := Compare(g, g)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if report.MSE != 0 || !math.IsInf(report.PSNR, 1) || report.ChangedPixels != 0 || report.ChangedBits != 0 {
		t.Fatalf("expected no distortion but found %v", report)
	}
}

func TestCompare(t *testing.T) {
	a := pixelgrid.New(2, 1)
	b := pixelgrid.New(2, 1)
	b.Set(1, 0, pixelgrid.RGB{R: 3, G: 0, B: 1})

	report, err := Compare(a, b)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	// squared errors 9 and 1 over 6 samples
	if expected := 10.0 / 6.0; math.Abs(report.MSE-expected) > 1e-9 {
		t.Fatalf("expected %v but found %v", expected, report.MSE)
	}
	if report.ChangedPixels != 1 {
		t.Fatalf("expected 1 but found %v", report.ChangedPixels)
	}
	if report.ChangedBits != 3 {
		t.Fatalf("expected 3 but found %v", report.ChangedBits)
	}
	if report.ChannelDelta[0].Mean != 1.5 {
		t.Fatalf("expected 1.5 but found %v", report.ChannelDelta[0].Mean)
	}
}

func TestCompareSizeMismatch(t *testing.T) {
	if _, err := Compare(pixelgrid.New(2, 2), pixelgrid.New(2, 3)); err == nil {
		t.Fatalf("expected an error")
	}
	if _, err := Heatmap(pixelgrid.New(2, 2), pixelgrid.New(3, 2)); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestCompareMergedImage(t *testing.T) {
	cover := pixelgrid.New(32, 32)
	secret := pixelgrid.New(32, 8)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			cover.Set(x, y, pixelgrid.RGB{R: uint8(rand.Intn(256)), G: uint8(rand.Intn(256)), B: uint8(rand.Intn(256))})
			if y < 8 {
				secret.Set(x, y, pixelgrid.RGB{R: uint8(rand.Intn(256)), G: uint8(rand.Intn(256)), B: uint8(rand.Intn(256))})
			}
		}
	}

	merged, err := stego.Merge(context.Background(), cover, secret)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	report, err := Compare(cover, merged)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	// one window per channel per block and at most one flip per window
	windows := 32 * 8 * 3
	if report.ChangedBits > windows {
		t.Fatalf("expected at most %v flipped bits but found %v", windows, report.ChangedBits)
	}
	// a single flip changes a sample by at most 8
	if report.MSE > 64 {
		t.Fatalf("expected small distortion but found %v", report)
	}

	heatmap, err := Heatmap(cover, merged)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	marked := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if heatmap.At(x, y) != pixelgrid.Black {
				marked++
			}
		}
	}
	if marked != report.ChangedPixels {
		t.Fatalf("expected %v marked pixels but found %v", report.ChangedPixels, marked)
	}
}
