// Package selectors provides predicate-based searches over an interaction's
// particle sequence. Every selector is total: an empty sequence or a
// predicate with no survivors yields NoMatch, never a panic.
package selectors

import (
	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pid"
	"github.com/dcarber/spinesel/internal/pvars"
)

// NoMatch is the sentinel index returned when no particle satisfies the
// selector predicate. It is distinct from every valid sequence index and
// callers must check for it before indexing.
const NoMatch = -1

// Predicate filters particles during a selection scan.
type Predicate func(p model.Particle) bool

// OrderingKey ranks the particles surviving the predicate.
type OrderingKey func(p model.Particle) float64

// SelectLeading scans the interaction's particles, keeps those satisfying
// pred, and returns the index of the survivor maximizing key. Ties resolve
// to the lowest index, making the result deterministic. Returns NoMatch when
// no particle survives, including for an empty sequence.
func SelectLeading(obj model.Interaction, pred Predicate, key OrderingKey) int {
	best := NoMatch
	var bestKey float64
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.Particle(i)
		if !pred(p) {
			continue
		}
		if k := key(p); best == NoMatch || k > bestKey {
			best = i
			bestKey = k
		}
	}
	return best
}

// LeadingMuon returns the index of the most energetic primary muon with
// kinetic energy at or above keThreshold, or NoMatch.
func LeadingMuon(s *pid.Scheme, obj model.Interaction, keThreshold float64) int {
	return leadingSpecies(s, obj, model.PIDMuon, keThreshold)
}

// LeadingElectron returns the index of the most energetic primary electron
// with kinetic energy at or above keThreshold, or NoMatch.
func LeadingElectron(s *pid.Scheme, obj model.Interaction, keThreshold float64) int {
	return leadingSpecies(s, obj, model.PIDElectron, keThreshold)
}

// LeadingProton returns the index of the most energetic primary proton with
// kinetic energy at or above keThreshold, or NoMatch.
func LeadingProton(s *pid.Scheme, obj model.Interaction, keThreshold float64) int {
	return leadingSpecies(s, obj, model.PIDProton, keThreshold)
}

func leadingSpecies(s *pid.Scheme, obj model.Interaction, species model.PID, keThreshold float64) int {
	ke := func(p model.Particle) float64 { return pvars.KineticEnergy(s, p) }
	pred := func(p model.Particle) bool {
		return s.Primary(p) && s.Identify(p) == species && ke(p) >= keThreshold
	}
	return SelectLeading(obj, pred, ke)
}
