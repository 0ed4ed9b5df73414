package blend

import "github.com/cwbudde/algo-pose/pose"

// Option mutates a Job built by NewJob.
type Option func(*Job)

// WithThreshold sets the job threshold. Values <= 0 are ignored.
func WithThreshold(threshold float32) Option {
	return func(j *Job) {
		if threshold > 0 {
			j.Threshold = threshold
		}
	}
}

// WithLayers appends normal layers.
func WithLayers(layers ...Layer) Option {
	return func(j *Job) {
		j.Layers = append(j.Layers, layers...)
	}
}

// WithAdditiveLayers appends additive layers.
func WithAdditiveLayers(layers ...Layer) Option {
	return func(j *Job) {
		j.AdditiveLayers = append(j.AdditiveLayers, layers...)
	}
}

// NewJob returns a job blending into out with rest as fallback pose and
// DefaultThreshold, then applies opts.
func NewJob(rest, out pose.Pose, opts ...Option) *Job {
	j := &Job{
		Threshold: DefaultThreshold,
		RestPose:  rest,
		Output:    out,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(j)
		}
	}
	return j
}
