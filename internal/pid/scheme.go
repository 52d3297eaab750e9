// Package pid holds the overridable classification scheme: the two decisions
// ("is this particle primary" and "what species is this particle") that every
// downstream cut and variable resolves through an indirection instead of
// reading the record directly. Swapping the scheme changes the behavior of
// everything built on top of it without touching that code.
package pid

import "github.com/dcarber/spinesel/internal/model"

// PrimaryFunc decides whether a particle is a primary final-state particle.
type PrimaryFunc func(p model.Particle) bool

// IdentifyFunc assigns a species code to a particle.
type IdentifyFunc func(p model.Particle) model.PID

// Scheme bundles the primary-designation and particle-identification
// functions. A Scheme is built once, before any analysis pass starts, and is
// never mutated afterwards; concurrent workers may share it freely.
type Scheme struct {
	Primary  PrimaryFunc
	Identify IdentifyFunc
}

// Default returns the upstream behavior: the primary flag and species code
// stored in the record by the reconstruction.
func Default() *Scheme {
	return &Scheme{
		Primary:  func(p model.Particle) bool { return p.Primary() },
		Identify: func(p model.Particle) model.PID { return p.Species() },
	}
}

// WithPrimaryThreshold returns a scheme that re-derives the primary
// designation of reconstructed particles from the softmax primary score,
// using the given threshold instead of the upstream argmax decision. Truth
// particles keep their generator designation.
func WithPrimaryThreshold(threshold float64) *Scheme {
	s := Default()
	s.Primary = func(p model.Particle) bool {
		if r, ok := p.(*model.RecoParticle); ok {
			return r.PrimaryScores[1] >= threshold
		}
		return p.Primary()
	}
	return s
}
