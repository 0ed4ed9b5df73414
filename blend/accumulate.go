package blend

import "github.com/cwbudde/algo-pose/pose"

// blendLayers accumulates the contributing layers into out and their
// per-joint weights into acc.
func (p *plan) blendLayers(out []pose.SoaTransform, acc, w []pose.SoaFloat4, lo, hi int) {
	first := true
	for i := range p.job.Layers {
		l := &p.job.Layers[i]
		if !(l.Weight > 0) {
			continue
		}

		layerWeights(w, l, l.Weight, lo, hi)
		in := l.Pose[lo:hi]
		if first {
			p.kernel.BlendFirst(out, in, w)
			copy(acc, w)
			first = false
			continue
		}

		p.kernel.BlendNext(out, in, w)
		for b := range acc {
			for k := range acc[b] {
				acc[b][k] += w[b][k]
			}
		}
	}
}
