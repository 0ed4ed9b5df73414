// Package blend combines weighted, already-sampled local-space poses into a
// single output pose.
//
// A [Job] borrows a rest pose, an output buffer and two lists of [Layer]s.
// [Job.Run] validates the job and then, in fixed order:
//
//  1. accumulates the normal layers (weighted sum, shortest-path rotations),
//  2. blends the rest pose in wherever the accumulated weight is below
//     the job threshold,
//  3. normalizes the result to unit weight and unit rotations,
//  4. composes the additive layers onto the normalized pose.
//
// Layers with a JointWeights mask contribute per joint. As soon as one
// contributing layer carries a mask, steps 2 and 3 switch from a single
// job-wide weight to per-joint weights for every joint.
//
// Buffers are processed in blocks of four joints ([pose.SoaTransform]). Only
// len(RestPose) blocks are read from the inputs and written to Output; any
// extra capacity is ignored. Output must not share memory with any input.
//
// Run performs no allocation once warmed up, holds no state between calls
// and may be called every frame on the same buffers. Independent jobs may
// run concurrently. The kernel is selected once per process from the CPU
// features; build with -tags purego to force the pure Go kernels and with
// -tags fastmath to use approximated inverse square roots.
package blend
