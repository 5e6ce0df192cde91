package core

import (
	"math"
	"math/rand"
)

// minUnitSampleLengthSquared rejects candidates too short to normalize safely
const minUnitSampleLengthSquared = 1e-160

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInCube returns a uniform random point in [-1,1]^3
func RandomInCube(sampler Sampler) Vec3 {
	s := sampler.Get3D()
	return NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
}

// RandomUnitVector returns a direction uniformly distributed over the unit sphere.
// Candidates from the cube are rejected unless 1e-160 < |p|^2 <= 1.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomInCube(sampler)
		lensq := p.LengthSquared()
		if minUnitSampleLengthSquared < lensq && lensq <= 1 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}
