package blend

import "github.com/cwbudde/algo-pose/pose"

// addLayers composes the additive layers onto out. Negative weights remove
// the layer's delta.
func (p *plan) addLayers(out []pose.SoaTransform, w []pose.SoaFloat4, lo, hi int) {
	for i := range p.job.AdditiveLayers {
		l := &p.job.AdditiveLayers[i]
		in := l.Pose[lo:hi]
		switch {
		case l.Weight > 0:
			layerWeights(w, l, l.Weight, lo, hi)
			p.kernel.Add(out, in, w)
		case l.Weight < 0:
			layerWeights(w, l, -l.Weight, lo, hi)
			p.kernel.Sub(out, in, w)
		}
	}
}
