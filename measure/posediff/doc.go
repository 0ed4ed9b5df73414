// Package posediff measures how far two poses are apart.
//
// It reports per-pose maxima and means of the translation distance, the
// rotation angle and the scale error between matching joints, plus how far
// the rotations of the first pose are from unit length. Rotations are
// compared sign-agnostically: q and -q describe the same rotation.
//
// A [Comparer] keeps its float64 scratch between calls and is the
// allocation-free path for comparing poses every frame; [Compare] is the
// one-shot form.
package posediff
