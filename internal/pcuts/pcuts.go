// Package pcuts defines cuts which act on single particles. Each cut takes
// one particle, in either representation, and returns a boolean. Primary
// designation and species identification always go through the pid.Scheme
// indirection, never through the record directly.
package pcuts

import (
	"github.com/dcarber/spinesel/internal/geometry"
	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pid"
	"github.com/dcarber/spinesel/internal/pvars"
)

// Final-state thresholds in MeV. The muon value corresponds to a 50 cm
// track length.
const (
	muonThreshold   = 143.425
	protonThreshold = 50.0
	otherThreshold  = 25.0
)

// IsPrimary reports whether the particle is a primary final-state particle
// according to the configured scheme.
func IsPrimary(s *pid.Scheme, p model.Particle) bool {
	return s.Primary(p)
}

// FinalStateSignal reports whether the particle meets the final-state signal
// requirements: it must be primary and have an energy above the species
// threshold.
func FinalStateSignal(s *pid.Scheme, p model.Particle) bool {
	if !s.Primary(p) {
		return false
	}
	energy := pvars.KineticEnergy(s, p)
	switch species := s.Identify(p); {
	case species == model.PIDMuon:
		return energy > muonThreshold
	case species == model.PIDProton:
		return energy > protonThreshold
	case species < model.PIDProton:
		return energy > otherThreshold
	default:
		return false
	}
}

// Throughgoing reports whether a track enters and exits the active volume:
// both endpoints lie near the volume boundary. Nonsensical for showers, so
// shower species never pass.
func Throughgoing(s *pid.Scheme, active geometry.Box, margin float64, p model.Particle) bool {
	if s.Identify(p).IsShower() {
		return false
	}
	return active.NearBoundary(p.Start(), margin) && active.NearBoundary(p.End(), margin)
}
