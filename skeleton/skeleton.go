// Package skeleton describes a joint hierarchy together with its rest pose,
// laid out the way package blend consumes it.
package skeleton

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pose/pose"
)

// ErrInvalidSkeleton is wrapped by every error New returns.
var ErrInvalidSkeleton = errors.New("skeleton: invalid joint hierarchy")

// NoParent is the Parent value of a root joint.
const NoParent = -1

// Joint describes a single joint.
// Parent refers to another joint's index within the slice given to New,
// or is negative for a root. Parents must precede their children.
type Joint struct {
	Name   string
	Parent int
	Rest   pose.Transform
}

// Skeleton is an immutable joint hierarchy.
type Skeleton struct {
	names    []string
	parents  []int
	children [][]int
	rest     pose.Pose
}

// New creates a skeleton from joints.
func New(joints []Joint) (*Skeleton, error) {
	n := len(joints)
	if n == 0 {
		return nil, fmt.Errorf("%w: no joints", ErrInvalidSkeleton)
	}

	s := &Skeleton{
		names:    make([]string, n),
		parents:  make([]int, n),
		children: make([][]int, n),
		rest:     pose.New(n),
	}

	for i := range joints {
		p := joints[i].Parent
		switch {
		case p >= n:
			return nil, fmt.Errorf("%w: joint %d parent %d out of bounds", ErrInvalidSkeleton, i, p)
		case p == i:
			return nil, fmt.Errorf("%w: joint %d is its own parent", ErrInvalidSkeleton, i)
		case p > i:
			return nil, fmt.Errorf("%w: joint %d parent %d does not precede it", ErrInvalidSkeleton, i, p)
		case p < 0:
			p = NoParent
		default:
			s.children[p] = append(s.children[p], i)
		}

		s.names[i] = joints[i].Name
		s.parents[i] = p
		s.rest.SetJoint(i, joints[i].Rest)
	}
	return s, nil
}

// NumJoints returns the number of joints.
func (s *Skeleton) NumJoints() int { return len(s.parents) }

// NumBlocks returns the number of packed blocks a pose of s needs.
func (s *Skeleton) NumBlocks() int { return len(s.rest) }

// RestPose returns the packed rest pose. Padding lanes hold the identity.
// The returned pose is shared and must not be modified.
func (s *Skeleton) RestPose() pose.Pose { return s.rest }

// Name returns the name of joint i.
func (s *Skeleton) Name(i int) string { return s.names[i] }

// Parent returns the parent of joint i, or NoParent.
func (s *Skeleton) Parent(i int) int { return s.parents[i] }

// Find returns the index of the first joint called name, or -1.
func (s *Skeleton) Find(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

// IterateDepthFirst calls fn for root and each of its descendants, parents
// before children. A negative root walks every root joint in turn.
func (s *Skeleton) IterateDepthFirst(root int, fn func(joint, parent int)) {
	if root >= 0 {
		s.walk(root, fn)
		return
	}
	for i, p := range s.parents {
		if p == NoParent {
			s.walk(i, fn)
		}
	}
}

func (s *Skeleton) walk(i int, fn func(joint, parent int)) {
	fn(i, s.parents[i])
	for _, c := range s.children[i] {
		s.walk(c, fn)
	}
}

// SubtreeMask sets the weight of root and all its descendants in mask to w.
// Other joints are left unchanged. mask must hold at least NumBlocks blocks.
func (s *Skeleton) SubtreeMask(mask pose.JointMask, root int, w float32) {
	s.IterateDepthFirst(root, func(joint, _ int) {
		mask.SetWeight(joint, w)
	})
}
