package blend

import (
	"fmt"
	"unsafe"
)

// validate runs every check without short-circuiting. Reasons are only
// formatted when errs is non-nil, so Validate stays allocation-free.
func (j *Job) validate(errs *[]error) bool {
	valid := true

	if !(j.Threshold > 0) {
		valid = false
		if errs != nil {
			report(errs, "threshold %v is not positive", j.Threshold)
		}
	}

	n := len(j.RestPose)
	if n == 0 {
		valid = false
		if errs != nil {
			report(errs, "rest pose is empty")
		}
	}
	if len(j.Output) == 0 {
		valid = false
		if errs != nil {
			report(errs, "output is empty")
		}
	}
	if len(j.Output) < n {
		valid = false
		if errs != nil {
			report(errs, "output has %d blocks, rest pose has %d", len(j.Output), n)
		}
	} else if overlaps(j.Output[:n], j.RestPose) {
		valid = false
		if errs != nil {
			report(errs, "output overlaps rest pose")
		}
	}

	if !j.validateLayers(j.Layers, "layer", errs) {
		valid = false
	}
	if !j.validateLayers(j.AdditiveLayers, "additive layer", errs) {
		valid = false
	}
	return valid
}

func (j *Job) validateLayers(layers []Layer, kind string, errs *[]error) bool {
	valid := true
	n := len(j.RestPose)
	var out []byte
	if len(j.Output) >= n {
		out = blockBytes(j.Output[:n])
	}

	for i := range layers {
		l := &layers[i]
		if len(l.Pose) < n {
			valid = false
			if errs != nil {
				report(errs, "%s %d pose has %d blocks, rest pose has %d", kind, i, len(l.Pose), n)
			}
		} else if overlaps(out, blockBytes(l.Pose[:n])) {
			valid = false
			if errs != nil {
				report(errs, "%s %d pose overlaps output", kind, i)
			}
		}

		if len(l.JointWeights) == 0 {
			continue
		}
		if len(l.JointWeights) < n {
			valid = false
			if errs != nil {
				report(errs, "%s %d joint weights have %d blocks, rest pose has %d", kind, i, len(l.JointWeights), n)
			}
		} else if overlaps(out, blockBytes(l.JointWeights[:n])) {
			valid = false
			if errs != nil {
				report(errs, "%s %d joint weights overlap output", kind, i)
			}
		}
	}
	return valid
}

func report(errs *[]error, format string, args ...any) {
	*errs = append(*errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidJob}, args...)...))
}

// blockBytes reinterprets a slice as its backing bytes.
func blockBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// overlaps reports whether the memory spanned by a and b intersects.
func overlaps[A, B any](a []A, b []B) bool {
	ab, bb := blockBytes(a), blockBytes(b)
	if len(ab) == 0 || len(bb) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(ab)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(bb)))
	return a0 < b0+uintptr(len(bb)) && b0 < a0+uintptr(len(ab))
}
