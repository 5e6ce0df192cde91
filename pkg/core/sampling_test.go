package core

import (
	"math"
	"testing"
)

// sequenceSampler replays a fixed list of 3D samples, then repeats the last one
type sequenceSampler struct {
	samples []Vec3
	next    int
}

func (s *sequenceSampler) Get1D() float64 { return s.Get3D().X }
func (s *sequenceSampler) Get2D() Vec2 {
	v := s.Get3D()
	return NewVec2(v.X, v.Y)
}
func (s *sequenceSampler) Get3D() Vec3 {
	v := s.samples[s.next]
	if s.next < len(s.samples)-1 {
		s.next++
	}
	return v
}

func TestRandomSampler_Ranges(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		x := sampler.Get1D()
		if x < 0 || x >= 1 {
			t.Fatalf("Get1D out of range: %f", x)
		}
		v := sampler.Get3D()
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < 0 || c >= 1 {
				t.Fatalf("Get3D component out of range: %v", v)
			}
		}
	}
}

func TestRandomSampler_SeededIsDeterministic(t *testing.T) {
	a := NewSeededSampler(1234)
	b := NewSeededSampler(1234)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("samplers with equal seeds diverged at step %d", i)
		}
	}
}

func TestRandomUnitVector_IsUnitLength(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestRandomUnitVector_CoversSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	const n = 20000

	var mean Vec3
	octants := make(map[[3]bool]int)
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		mean = mean.Add(v)
		octants[[3]bool{v.X > 0, v.Y > 0, v.Z > 0}]++
	}
	mean = mean.Divide(n)

	if mean.Length() > 0.03 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
	if len(octants) != 8 {
		t.Fatalf("Expected samples in all 8 octants, got %d", len(octants))
	}
	for octant, count := range octants {
		if count < n/8*8/10 || count > n/8*12/10 {
			t.Errorf("Octant %v has %d samples, expected about %d", octant, count, n/8)
		}
	}
}

func TestRandomUnitVector_RejectsOutsideAndDegenerate(t *testing.T) {
	sampler := &sequenceSampler{samples: []Vec3{
		NewVec3(1, 1, 1),       // corner (1,1,1), outside the sphere
		NewVec3(0.5, 0.5, 0.5), // origin, too short to normalize
		NewVec3(0.5, 0.5, 1),   // (0,0,1), on the sphere: accepted
	}}

	v := RandomUnitVector(sampler)
	expected := NewVec3(0, 0, 1)
	if v.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, v)
	}
	if sampler.next != 2 {
		t.Errorf("Expected two rejected candidates, consumed %d samples", sampler.next+1)
	}
}
