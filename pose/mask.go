package pose

// JointMask holds one blend weight per joint, packed like a Pose.
// Negative weights are treated as zero by the blending engine.
type JointMask []SoaFloat4

// NewJointMask returns a mask for joints joints with every lane set to w.
func NewJointMask(joints int, w float32) JointMask {
	m := make(JointMask, NumBlocks(joints))
	m.Fill(w)
	return m
}

// Weight returns the weight of joint i.
func (m JointMask) Weight(i int) float32 {
	return m[i/Lanes][i%Lanes]
}

// SetWeight sets the weight of joint i.
func (m JointMask) SetWeight(i int, w float32) {
	m[i/Lanes][i%Lanes] = w
}

// Fill sets every lane of m to w.
func (m JointMask) Fill(w float32) {
	s := Splat(w)
	for i := range m {
		m[i] = s
	}
}
