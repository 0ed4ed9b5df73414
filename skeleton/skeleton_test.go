package skeleton

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-pose/pose"
)

// humanoid:
//
//	0 hips
//	├─ 1 spine ─ 2 chest ─┬─ 3 neck ─ 4 head
//	│                     ├─ 5 l_arm
//	│                     └─ 6 r_arm
//	├─ 7 l_leg
//	└─ 8 r_leg
func humanoid(t *testing.T) *Skeleton {
	t.Helper()
	names := []string{"hips", "spine", "chest", "neck", "head", "l_arm", "r_arm", "l_leg", "r_leg"}
	parents := []int{NoParent, 0, 1, 2, 3, 2, 2, 0, 0}

	joints := make([]Joint, len(names))
	for i := range joints {
		rest := pose.Identity()
		rest.Translation = pose.Vec3{0, float32(i), 0}
		joints[i] = Joint{Name: names[i], Parent: parents[i], Rest: rest}
	}

	s, err := New(joints)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := humanoid(t)

	if s.NumJoints() != 9 || s.NumBlocks() != 3 {
		t.Fatalf("got %d joints, %d blocks; want 9, 3", s.NumJoints(), s.NumBlocks())
	}
	if got := s.RestPose().Joint(4).Translation; got != (pose.Vec3{0, 4, 0}) {
		t.Fatalf("rest translation of head = %v", got)
	}
	if got := s.RestPose().Joint(11); got != pose.Identity() {
		t.Fatalf("padding joint = %+v, want identity", got)
	}
	if s.Name(3) != "neck" || s.Parent(3) != 2 || s.Parent(0) != NoParent {
		t.Fatalf("unexpected joint 3: %q parent %d", s.Name(3), s.Parent(3))
	}
}

func TestNewRejectsInvalidHierarchy(t *testing.T) {
	tests := []struct {
		name   string
		joints []Joint
	}{
		{"empty", nil},
		{"parent out of bounds", []Joint{{Parent: NoParent}, {Parent: 2}}},
		{"self parent", []Joint{{Parent: NoParent}, {Parent: 1}}},
		{"child before parent", []Joint{{Parent: 1}, {Parent: NoParent}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.joints)
			if !errors.Is(err, ErrInvalidSkeleton) {
				t.Fatalf("expected ErrInvalidSkeleton, got %v", err)
			}
			if s != nil {
				t.Fatal("expected nil skeleton")
			}
		})
	}
}

func TestNewNormalizesRootParent(t *testing.T) {
	s, err := New([]Joint{{Parent: -7}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Parent(0) != NoParent {
		t.Fatalf("expected NoParent, got %d", s.Parent(0))
	}
}

func TestFind(t *testing.T) {
	s := humanoid(t)
	if got := s.Find("l_arm"); got != 5 {
		t.Fatalf("Find(l_arm) = %d, want 5", got)
	}
	if got := s.Find("tail"); got != -1 {
		t.Fatalf("Find(tail) = %d, want -1", got)
	}
}

func TestIterateDepthFirst(t *testing.T) {
	s := humanoid(t)

	var order []int
	s.IterateDepthFirst(-1, func(joint, parent int) {
		if parent != s.Parent(joint) {
			t.Fatalf("joint %d: got parent %d, want %d", joint, parent, s.Parent(joint))
		}
		order = append(order, joint)
	})
	if want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}; !slices.Equal(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}

	order = order[:0]
	s.IterateDepthFirst(2, func(joint, _ int) { order = append(order, joint) })
	if want := []int{2, 3, 4, 5, 6}; !slices.Equal(order, want) {
		t.Fatalf("subtree order = %v, want %v", order, want)
	}
}

func TestSubtreeMask(t *testing.T) {
	s := humanoid(t)
	mask := pose.NewJointMask(s.NumJoints(), 0)

	s.SubtreeMask(mask, s.Find("spine"), 1)

	for i := range s.NumJoints() {
		want := float32(0)
		if i >= 1 && i <= 6 {
			want = 1
		}
		if got := mask.Weight(i); got != want {
			t.Fatalf("Weight(%d) = %v, want %v", i, got, want)
		}
	}
}
