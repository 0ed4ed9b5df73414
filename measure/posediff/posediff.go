package posediff

import (
	"math"

	"github.com/cwbudde/algo-pose/pose"
	"github.com/cwbudde/algo-vecmath"
)

// Config holds comparison parameters.
type Config struct {
	// Joints is the number of joints compared. Values <= 0 compare every
	// joint both poses hold.
	Joints int
}

// Result holds comparison results. Rotation errors are in radians.
type Result struct {
	Joints          int
	MaxTranslation  float64
	MeanTranslation float64
	MaxRotation     float64
	MeanRotation    float64
	MaxScale        float64
	MaxUnitError    float64
}

// Comparer compares poses using reusable scratch buffers.
// A Comparer is not safe for concurrent use.
type Comparer struct {
	cfg Config

	// one slice per unpacked component
	ta, tb [3][]float64
	ra, rb [4][]float64
	sa, sb [3][]float64

	tmp, dist []float64
}

// NewComparer creates a new comparer.
func NewComparer(cfg Config) *Comparer {
	return &Comparer{cfg: cfg}
}

// Compare is a one-shot comparison of the first joints joints of a and b.
func Compare(a, b pose.Pose, joints int) Result {
	return NewComparer(Config{Joints: joints}).Compare(a, b)
}

// Compare compares a against b.
func (c *Comparer) Compare(a, b pose.Pose) Result {
	n := min(a.Joints(), b.Joints())
	if c.cfg.Joints > 0 {
		n = min(n, c.cfg.Joints)
	}
	if n == 0 {
		return Result{}
	}

	c.grow(n)
	c.unpack(a, n, &c.ta, &c.ra, &c.sa)
	c.unpack(b, n, &c.tb, &c.rb, &c.sb)

	res := Result{Joints: n}
	res.MaxTranslation, res.MeanTranslation = c.translationError(n)
	res.MaxRotation, res.MeanRotation = c.rotationError(n)
	res.MaxScale = c.scaleError(n)
	res.MaxUnitError = c.unitError(n)
	return res
}

func (c *Comparer) grow(n int) {
	resize := func(s []float64) []float64 {
		if cap(s) < n {
			return make([]float64, n)
		}
		return s[:n]
	}
	for k := range 3 {
		c.ta[k], c.tb[k] = resize(c.ta[k]), resize(c.tb[k])
		c.sa[k], c.sb[k] = resize(c.sa[k]), resize(c.sb[k])
	}
	for k := range 4 {
		c.ra[k], c.rb[k] = resize(c.ra[k]), resize(c.rb[k])
	}
	c.tmp, c.dist = resize(c.tmp), resize(c.dist)
}

func (c *Comparer) unpack(p pose.Pose, n int, t *[3][]float64, r *[4][]float64, s *[3][]float64) {
	for i := range n {
		j := p.Joint(i)
		for k := range 3 {
			t[k][i] = float64(j.Translation[k])
			s[k][i] = float64(j.Scale[k])
		}
		for k := range 4 {
			r[k][i] = float64(j.Rotation[k])
		}
	}
}

// translationError returns the maximum and mean Euclidean distance between
// matching translations. ta is overwritten with the differences.
func (c *Comparer) translationError(n int) (maxErr, mean float64) {
	for k := range 3 {
		for i := range n {
			c.ta[k][i] -= c.tb[k][i]
		}
	}
	vecmath.Magnitude(c.tmp, c.ta[0], c.ta[1])
	vecmath.Magnitude(c.dist, c.tmp, c.ta[2])
	return maxMean(c.dist)
}

// rotationError returns the maximum and mean angle between matching
// rotations. Rotations are normalized before comparing.
func (c *Comparer) rotationError(n int) (maxErr, mean float64) {
	clear(c.dist)
	for k := range 4 {
		vecmath.MulBlock(c.tmp, c.ra[k], c.rb[k])
		for i, v := range c.tmp {
			c.dist[i] += v
		}
	}

	// |a| and |b| from the squared component sums.
	la, lb := c.squaredLen(c.ra), c.squaredLen(c.rb)
	for i := range n {
		l := math.Sqrt(la[i] * lb[i])
		if l == 0 {
			c.dist[i] = math.Pi
			continue
		}
		d := min(math.Abs(c.dist[i])/l, 1)
		c.dist[i] = 2 * math.Acos(d)
	}
	return maxMean(c.dist)
}

// squaredLen overwrites q[0] with the squared lengths of q and returns it.
func (c *Comparer) squaredLen(q [4][]float64) []float64 {
	vecmath.Power(c.tmp, q[0], q[1])
	vecmath.Power(q[0], q[2], q[3])
	for i, v := range c.tmp {
		q[0][i] += v
	}
	return q[0]
}

func (c *Comparer) scaleError(n int) float64 {
	var m float64
	for k := range 3 {
		for i := range n {
			m = max(m, math.Abs(c.sa[k][i]-c.sb[k][i]))
		}
	}
	return m
}

// unitError must run after rotationError: it reads the squared lengths
// left in ra[0].
func (c *Comparer) unitError(n int) float64 {
	var m float64
	for _, l2 := range c.ra[0][:n] {
		m = max(m, math.Abs(math.Sqrt(l2)-1))
	}
	return m
}

func maxMean(x []float64) (maxVal, mean float64) {
	var sum float64
	for _, v := range x {
		maxVal = max(maxVal, v)
		sum += v
	}
	return maxVal, sum / float64(len(x))
}
