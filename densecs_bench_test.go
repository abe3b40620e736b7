package densecs

import (
	"fmt"
	"testing"
)

type benchPos struct{ X, Y float64 }
type benchVel struct{ VX, VY float64 }

func sizeName(size int) string {
	if size >= 1000000 {
		return fmt.Sprintf("%dM", size/1000000)
	}
	return fmt.Sprintf("%dK", size/1000)
}

// Entity Creation Benchmarks
func BenchmarkCreateEntity(b *testing.B) {
	sizes := []int{1000, 10000, 100000, 1000000}
	for _, size := range sizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				w := NewWorld()
				for j := 0; j < size; j++ {
					_ = w.CreateEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkCreateEntities(b *testing.B) {
	sizes := []int{1000, 10000, 100000, 1000000}
	for _, size := range sizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				w := NewWorld()
				_ = w.CreateEntities(size)
			}
			b.ReportAllocs()
		})
	}
}

// Creation with two registered columns, measuring the per-type growth cost.
func BenchmarkCreateEntityTwoColumns(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				w := NewWorld()
				e := w.CreateEntity()
				Insert(w, e, benchPos{})
				Insert(w, e, benchVel{})
				for j := 0; j < size-1; j++ {
					_ = w.CreateEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

// Insert Benchmarks
func BenchmarkInsertExisting(b *testing.B) {
	w := NewWorld()
	ents := w.CreateEntities(1000)
	Insert(w, ents[0], benchPos{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range ents {
			Insert(w, e, benchPos{X: 1, Y: 2})
		}
	}
	b.ReportAllocs()
}

// Query Benchmarks
func BenchmarkQueryIterate(b *testing.B) {
	sizes := []int{1000, 10000, 100000, 1000000}
	for _, size := range sizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := NewWorld()
			ents := w.CreateEntities(size)
			Insert(w, ents[0], benchPos{X: 1, Y: 1})
			b.ResetTimer()
			var sum float64
			for i := 0; i < b.N; i++ {
				positions, _ := Query[benchPos](w)
				for i := range positions {
					sum += positions[i].X
				}
			}
			b.ReportAllocs()
			_ = sum
		})
	}
}

func BenchmarkQueryMutIterate(b *testing.B) {
	w := NewWorld()
	ents := w.CreateEntities(100000)
	Insert(w, ents[0], benchPos{})
	Insert(w, ents[0], benchVel{VX: 1, VY: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		positions, _ := QueryMut[benchPos](w)
		velocities, _ := Query[benchVel](w)
		for i := range positions {
			positions[i].X += velocities[i].VX
			positions[i].Y += velocities[i].VY
		}
	}
	b.ReportAllocs()
}

// Reference Count Benchmarks
func BenchmarkRetainRelease(b *testing.B) {
	w := NewWorld()
	e := w.CreateEntity()
	for i := 0; i < b.N; i++ {
		w.Retain(e)
		w.Release(e)
	}
	b.ReportAllocs()
}
