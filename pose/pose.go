package pose

import (
	"errors"
	"fmt"
)

// ErrPoseTooShort is returned when a packed pose has fewer blocks than the
// joint count requires.
var ErrPoseTooShort = errors.New("pose: packed pose too short")

// Pose is a packed pose: NumBlocks(joints) blocks of four joint transforms.
//
// Pose is a plain slice so that jobs can borrow caller memory without
// copying. Sub-slicing a Pose by blocks yields a valid Pose for the
// corresponding joints.
type Pose []SoaTransform

// New returns a pose for joints joints with every lane, padding included,
// set to the identity transform.
func New(joints int) Pose {
	p := make(Pose, NumBlocks(joints))
	p.Fill(Identity())
	return p
}

// Joints returns the number of joint lanes p can hold.
func (p Pose) Joints() int {
	return len(p) * Lanes
}

// Joint returns the transform of joint i.
// It panics if i is out of range.
func (p Pose) Joint(i int) Transform {
	return p[i/Lanes].lane(i % Lanes)
}

// SetJoint stores t as the transform of joint i.
// It panics if i is out of range.
func (p Pose) SetJoint(i int, t Transform) {
	p[i/Lanes].setLane(i%Lanes, &t)
}

// Fill sets every lane of p to t.
func (p Pose) Fill(t Transform) {
	if len(p) == 0 {
		return
	}
	for l := range Lanes {
		p[0].setLane(l, &t)
	}
	for i := 1; i < len(p); i++ {
		p[i] = p[0]
	}
}

// Pack stores joints into dst. Lanes past len(joints) are left unchanged.
func Pack(dst Pose, joints []Transform) error {
	if n := NumBlocks(len(joints)); len(dst) < n {
		return fmt.Errorf("%w: have %d blocks, need %d", ErrPoseTooShort, len(dst), n)
	}
	for i := range joints {
		dst[i/Lanes].setLane(i%Lanes, &joints[i])
	}
	return nil
}

// Unpack stores the first len(dst) joints of src into dst.
func Unpack(dst []Transform, src Pose) error {
	if len(dst) > src.Joints() {
		return fmt.Errorf("%w: have %d joints, need %d", ErrPoseTooShort, src.Joints(), len(dst))
	}
	for i := range dst {
		dst[i] = src[i/Lanes].lane(i % Lanes)
	}
	return nil
}
