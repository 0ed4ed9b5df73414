package pose

import "sync"

// Pool provides sync.Pool-based Pose reuse, so callers that blend every
// frame can keep their scratch poses off the garbage collector.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return new(Pose)
			},
		},
	}
}

// Get returns a pose able to hold joints joints, reset to identity.
// Callers must return it via Put when done.
func (p *Pool) Get(joints int) *Pose {
	b := p.pool.Get().(*Pose)
	n := NumBlocks(joints)
	if cap(*b) < n {
		*b = make(Pose, n)
	}
	*b = (*b)[:n]
	b.Fill(Identity())
	return b
}

// Put returns a pose to the pool for reuse.
// The caller must not use the pose after calling Put.
func (p *Pool) Put(b *Pose) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
