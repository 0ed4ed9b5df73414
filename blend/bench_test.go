package blend

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-pose/pose"
)

var benchJointCounts = []int{16, 64, 256, 1024}

func BenchmarkRun(b *testing.B) {
	for _, joints := range benchJointCounts {
		b.Run(fmt.Sprintf("joints=%d", joints), func(b *testing.B) {
			job := mixedJob(joints, pose.New(joints))

			b.SetBytes(int64(len(job.Output)) * int64(unsafe.Sizeof(pose.SoaTransform{})))
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				job.Run()
			}
		})
	}
}

func BenchmarkRunParallel(b *testing.B) {
	const joints = 4096

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			job := mixedJob(joints, pose.New(joints))

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				job.RunParallel(workers)
			}
		})
	}
}

func BenchmarkValidate(b *testing.B) {
	job := mixedJob(256, pose.New(256))

	b.ReportAllocs()
	for b.Loop() {
		job.Validate()
	}
}
