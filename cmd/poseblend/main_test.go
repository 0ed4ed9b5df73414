package main

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-pose/blend"
	"github.com/cwbudde/algo-pose/internal/testutil"
	"github.com/cwbudde/algo-pose/skeleton"
)

func TestParseWeights(t *testing.T) {
	tests := []struct {
		in      string
		want    []float32
		wantErr bool
	}{
		{"", nil, false},
		{"1", []float32{1}, false},
		{" 0.5, 0.25 ,-1", []float32{0.5, 0.25, -1}, false},
		{"0.5,abc", nil, true},
		{"0.5,", nil, true},
	}

	for _, tt := range tests {
		got, err := parseWeights(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseWeights(%q): unexpected error state %v", tt.in, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Fatalf("parseWeights(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRunWithoutLayersReturnsRestPose(t *testing.T) {
	skel, out, err := run(config{joints: 9, threshold: blend.DefaultThreshold, maskRoot: -1, workers: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	testutil.RequirePoseNearlyEqual(t, out, skel.RestPose(), skel.NumJoints(), 0)
}

func TestRunMaskedAdditive(t *testing.T) {
	skel, out, err := run(config{
		joints:    300,
		threshold: blend.DefaultThreshold,
		weights:   []float32{0.6, 1},
		maskRoot:  150,
		additive:  -0.5,
		workers:   4,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	testutil.RequireUnitRotations(t, out, skel.NumJoints(), 1e-3)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		want error
	}{
		{"no joints", config{joints: 0, threshold: 0.1, maskRoot: -1}, skeleton.ErrInvalidSkeleton},
		{"bad threshold", config{joints: 4, threshold: 0, maskRoot: -1}, blend.ErrInvalidJob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, _, err := run(config{joints: 4, threshold: 0.1, weights: []float32{1}, maskRoot: 4}); err == nil {
		t.Fatal("expected error for out-of-range mask root")
	}
}
