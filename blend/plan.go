package blend

import (
	"sync"

	archregistry "github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	"github.com/cwbudde/algo-pose/pose"
)

// chunkBlocks is the number of blocks run through all four stages before
// moving on, so a chunk of Output stays in cache between stages.
const chunkBlocks = 32

// scratch holds the per-chunk weight buffers.
type scratch struct {
	acc [chunkBlocks]pose.SoaFloat4
	w   [chunkBlocks]pose.SoaFloat4
}

var scratchPool = sync.Pool{
	New: func() any {
		return new(scratch)
	},
}

// plan holds the job-wide decisions derived from the layer list. They are
// identical for every block, which lets Run process blocks in independent
// chunks.
type plan struct {
	job    *Job
	kernel *archregistry.OpEntry

	passes        int
	partialPasses int

	// accumulatedWeight is the sum of the contributing layer weights.
	accumulatedWeight float32

	// copyRest is set when no layer contributes and no mask is involved:
	// Output becomes a copy of the rest pose and is not normalized.
	copyRest bool

	// restWeight is the weight the rest pose is blended in with in global
	// mode, 0 if none.
	restWeight float32

	// normWeight is the global weight the accumulated blocks are divided by.
	normWeight float32
}

func newPlan(j *Job, k *archregistry.OpEntry) plan {
	p := plan{job: j, kernel: k}
	for i := range j.Layers {
		l := &j.Layers[i]
		if !(l.Weight > 0) {
			continue
		}
		p.passes++
		if len(l.JointWeights) > 0 {
			p.partialPasses++
		}
		p.accumulatedWeight += l.Weight
	}

	p.normWeight = p.accumulatedWeight
	if p.partialPasses == 0 {
		if bp := j.Threshold - p.accumulatedWeight; bp > 0 {
			if p.passes == 0 {
				p.copyRest = true
				p.normWeight = 1
			} else {
				p.restWeight = bp
				p.normWeight = j.Threshold
			}
		}
	}
	return p
}

func (p *plan) partial() bool {
	return p.partialPasses > 0
}

// run blends blocks [lo, hi) of the job.
func (p *plan) run(lo, hi int) {
	s := scratchPool.Get().(*scratch)
	for start := lo; start < hi; start += chunkBlocks {
		p.runChunk(s, start, min(start+chunkBlocks, hi))
	}
	scratchPool.Put(s)
}

func (p *plan) runChunk(s *scratch, lo, hi int) {
	n := hi - lo
	out := p.job.Output[lo:hi]
	acc, w := s.acc[:n], s.w[:n]

	p.blendLayers(out, acc, w, lo, hi)
	p.blendRestPose(out, acc, w, lo, hi)
	p.normalize(out, acc, w)
	p.addLayers(out, w, lo, hi)
}

// layerWeights writes the effective weight of l for blocks [lo, hi) into w:
// weight scaled by the clamped joint mask, or weight in every lane.
func layerWeights(w []pose.SoaFloat4, l *Layer, weight float32, lo, hi int) {
	if len(l.JointWeights) == 0 {
		s := pose.Splat(weight)
		for i := range w {
			w[i] = s
		}
		return
	}
	for i, m := range l.JointWeights[lo:hi] {
		for k, v := range m {
			if v > 0 {
				w[i][k] = v * weight
			} else {
				w[i][k] = 0
			}
		}
	}
}
