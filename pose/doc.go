// Package pose provides the packed local-space pose representation consumed
// and produced by the blending engine.
//
// Joint transforms are grouped in blocks of four ([SoaTransform]). Every
// component of a block (translation X, rotation W, ...) stores one scalar per
// joint lane, so arithmetic on a component maps onto a single 128-bit vector
// operation. A [Pose] is an ordered sequence of blocks and holds
// [NumBlocks](joints) entries; lanes past the last joint are padding.
//
// [Transform] and [Quat] are the per-joint (array of structures) view used to
// build and inspect poses outside of hot paths.
package pose
