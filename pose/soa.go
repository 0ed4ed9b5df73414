package pose

// Lanes is the number of joints stored in one block.
const Lanes = 4

// SoaFloat4 holds one scalar for each joint lane of a block.
type SoaFloat4 [Lanes]float32

// SoaFloat3 is a block of four 3-component vectors.
type SoaFloat3 struct {
	X, Y, Z SoaFloat4
}

// SoaQuaternion is a block of four quaternions.
type SoaQuaternion struct {
	X, Y, Z, W SoaFloat4
}

// SoaTransform is a block of four joint transforms.
type SoaTransform struct {
	Translation SoaFloat3
	Rotation    SoaQuaternion
	Scale       SoaFloat3
}

// Splat returns v replicated in every lane.
func Splat(v float32) SoaFloat4 {
	return SoaFloat4{v, v, v, v}
}

// IdentitySoaTransform returns a block whose four lanes hold the identity
// transform.
func IdentitySoaTransform() SoaTransform {
	zero := SoaFloat4{}
	one := Splat(1)
	return SoaTransform{
		Translation: SoaFloat3{zero, zero, zero},
		Rotation:    SoaQuaternion{zero, zero, zero, one},
		Scale:       SoaFloat3{one, one, one},
	}
}

// NumBlocks returns the number of blocks needed to store joints transforms.
func NumBlocks(joints int) int {
	if joints <= 0 {
		return 0
	}
	return (joints + Lanes - 1) / Lanes
}

// lane returns the transform stored in lane l of b.
func (b *SoaTransform) lane(l int) Transform {
	return Transform{
		Translation: Vec3{b.Translation.X[l], b.Translation.Y[l], b.Translation.Z[l]},
		Rotation:    Quat{b.Rotation.X[l], b.Rotation.Y[l], b.Rotation.Z[l], b.Rotation.W[l]},
		Scale:       Vec3{b.Scale.X[l], b.Scale.Y[l], b.Scale.Z[l]},
	}
}

// setLane stores t in lane l of b.
func (b *SoaTransform) setLane(l int, t *Transform) {
	b.Translation.X[l] = t.Translation[0]
	b.Translation.Y[l] = t.Translation[1]
	b.Translation.Z[l] = t.Translation[2]
	b.Rotation.X[l] = t.Rotation[0]
	b.Rotation.Y[l] = t.Rotation[1]
	b.Rotation.Z[l] = t.Rotation[2]
	b.Rotation.W[l] = t.Rotation[3]
	b.Scale.X[l] = t.Scale[0]
	b.Scale.Y[l] = t.Scale[1]
	b.Scale.Z[l] = t.Scale[2]
}
