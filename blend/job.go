package blend

import (
	"errors"

	"github.com/cwbudde/algo-pose/pose"
)

// DefaultThreshold is the threshold used by NewJob.
const DefaultThreshold = 0.1

// ErrInvalidJob is wrapped by every error reported from Job.Err.
var ErrInvalidJob = errors.New("blend: invalid job")

// Layer is one weighted pose contribution.
type Layer struct {
	// Weight of the layer. Normal layers with Weight <= 0 are skipped.
	// Additive layers with a negative Weight are subtracted.
	Weight float32

	// Pose is read-only and must hold at least len(Job.RestPose) blocks.
	Pose pose.Pose

	// JointWeights optionally scales Weight per joint. Negative entries
	// count as zero. An empty mask means the layer affects every joint.
	JointWeights pose.JointMask
}

// Job blends Layers and AdditiveLayers into Output.
type Job struct {
	// Threshold is the accumulated weight below which the rest pose is
	// blended in. Must be > 0.
	Threshold float32

	// Layers are interpolated together.
	Layers []Layer

	// AdditiveLayers are composed onto the normalized result.
	AdditiveLayers []Layer

	// RestPose is the fallback pose; its length sets the number of blocks
	// processed.
	RestPose pose.Pose

	// Output receives the blended pose.
	Output pose.Pose
}

// Validate reports whether j can be run.
// It never allocates.
func (j *Job) Validate() bool {
	return j.validate(nil)
}

// Err returns nil if j is valid, or an error joining one ErrInvalidJob
// wrapped reason per failed check.
func (j *Job) Err() error {
	var errs []error
	j.validate(&errs)
	return errors.Join(errs...)
}

// Run validates j and writes the blended pose to Output. It returns false,
// leaving Output untouched, if j is invalid.
func (j *Job) Run() bool {
	if !j.Validate() {
		return false
	}
	p := newPlan(j, selectedKernel())
	p.run(0, len(j.RestPose))
	return true
}
