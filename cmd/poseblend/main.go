// Command poseblend blends procedural poses of a joint chain and prints the
// result.
//
// Usage:
//
//	poseblend [flags]
//
// Each normal layer bends the chain about a different axis. With -mask-root
// the last normal layer only drives the subtree below that joint, and with
// -additive a twist layer is composed on top.
//
// Examples:
//
//	poseblend
//	poseblend -joints 12 -weights 0.7,0.3
//	poseblend -weights 0.02 -threshold 0.1
//	poseblend -weights 1,1 -mask-root 4 -additive -0.5
//	poseblend -joints 4096 -workers 8 -rows 0
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pose/blend"
	"github.com/cwbudde/algo-pose/measure/posediff"
	"github.com/cwbudde/algo-pose/pose"
	"github.com/cwbudde/algo-pose/skeleton"
)

type config struct {
	joints    int
	threshold float64
	weights   []float32
	maskRoot  int
	additive  float64
	workers   int
}

func main() {
	joints := flag.Int("joints", 8, "number of joints in the chain")
	threshold := flag.Float64("threshold", blend.DefaultThreshold, "accumulated weight below which the rest pose is blended in")
	weights := flag.String("weights", "0.5,0.5", "comma separated normal layer weights")
	maskRoot := flag.Int("mask-root", -1, "restrict the last layer to the subtree of this joint (-1 off)")
	additive := flag.Float64("additive", 0, "weight of an additive twist layer (0 off, negative subtracts)")
	workers := flag.Int("workers", 1, "number of goroutines blending the pose")
	rows := flag.Int("rows", 16, "number of joints to print (0 prints none)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: poseblend [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Blends procedural poses of a joint chain and prints the result.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  poseblend -joints 12 -weights 0.7,0.3\n")
		fmt.Fprintf(os.Stderr, "  poseblend -weights 1,1 -mask-root 4 -additive -0.5\n")
	}
	flag.Parse()

	w, err := parseWeights(*weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	cfg := config{
		joints:    *joints,
		threshold: *threshold,
		weights:   w,
		maskRoot:  *maskRoot,
		additive:  *additive,
		workers:   *workers,
	}

	skel, out, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printPose(skel, out, *rows)
	printSummary(skel, out)
}

func parseWeights(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var weights []float32
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", field, err)
		}
		weights = append(weights, float32(v))
	}
	return weights, nil
}

// chain returns a skeleton of joints joints, each one unit above its parent.
func chain(joints int) (*skeleton.Skeleton, error) {
	js := make([]skeleton.Joint, joints)
	for i := range js {
		rest := pose.Identity()
		if i > 0 {
			rest.Translation = pose.Vec3{0, 1, 0}
		}
		js[i] = skeleton.Joint{
			Name:   fmt.Sprintf("joint%d", i),
			Parent: i - 1,
			Rest:   rest,
		}
	}
	return skeleton.New(js)
}

var axes = [...]pose.Vec3{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}

// bend fills p with the rest pose of skel rotated about axis by angle per
// joint and stretched by stretch.
func bend(p pose.Pose, skel *skeleton.Skeleton, axis pose.Vec3, angle, stretch float32) {
	rest := skel.RestPose()
	for i := range skel.NumJoints() {
		t := rest.Joint(i)
		t.Rotation.FromAxisAngle(&axis, angle)
		for k := range t.Translation {
			t.Translation[k] *= stretch
		}
		p.SetJoint(i, t)
	}
}

func run(cfg config) (*skeleton.Skeleton, pose.Pose, error) {
	skel, err := chain(cfg.joints)
	if err != nil {
		return nil, nil, err
	}

	pool := pose.NewPool()
	out := make(pose.Pose, skel.NumBlocks())
	job := blend.NewJob(skel.RestPose(), out)
	// Set directly so that Run reports a non-positive threshold.
	job.Threshold = float32(cfg.threshold)

	for k, w := range cfg.weights {
		p := pool.Get(cfg.joints)
		defer pool.Put(p)
		bend(*p, skel, axes[k%len(axes)], 0.3*float32(k+1), 1+0.25*float32(k))

		layer := blend.Layer{Weight: w, Pose: *p}
		if k == len(cfg.weights)-1 && cfg.maskRoot >= 0 {
			if cfg.maskRoot >= skel.NumJoints() {
				return nil, nil, fmt.Errorf("mask root %d out of range", cfg.maskRoot)
			}
			layer.JointWeights = pose.NewJointMask(cfg.joints, 0)
			skel.SubtreeMask(layer.JointWeights, cfg.maskRoot, 1)
		}
		job.Layers = append(job.Layers, layer)
	}

	if cfg.additive != 0 {
		p := pool.Get(cfg.joints)
		defer pool.Put(p)
		twist := pose.Identity()
		twist.Rotation.FromAxisAngle(&pose.Vec3{0, 1, 0}, math.Pi/8)
		p.Fill(twist)
		job.AdditiveLayers = append(job.AdditiveLayers, blend.Layer{Weight: float32(cfg.additive), Pose: *p})
	}

	if !job.RunParallel(cfg.workers) {
		return nil, nil, job.Err()
	}
	return skel, out, nil
}

func printPose(skel *skeleton.Skeleton, out pose.Pose, rows int) {
	if rows <= 0 {
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Joint\tParent\tTranslation\tRotation\tScale\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t------\t-----------\t--------\t-----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i := range min(rows, skel.NumJoints()) {
		t := out.Joint(i)
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\n",
			skel.Name(i),
			skel.Parent(i),
			t.Translation,
			t.Rotation,
			t.Scale,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSummary(skel *skeleton.Skeleton, out pose.Pose) {
	res := posediff.Compare(skel.RestPose(), out, skel.NumJoints())

	fmt.Printf("\nkernel: %s\n", blend.KernelName())
	fmt.Printf("joints: %d (%d blocks)\n", res.Joints, skel.NumBlocks())
	fmt.Printf("distance from rest pose: translation max %.4f mean %.4f, rotation max %.4f mean %.4f rad, scale max %.4f\n",
		res.MaxTranslation, res.MeanTranslation, res.MaxRotation, res.MeanRotation, res.MaxScale)
	fmt.Printf("max unit rotation error: %.2g\n", posediff.Compare(out, out, skel.NumJoints()).MaxUnitError)
}
