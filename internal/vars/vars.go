// Package vars defines variables which act on whole interactions. Each
// variable takes an interaction object and returns a float64; these are the
// building blocks for producing high-level tables of selected interactions.
package vars

import (
	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pid"
	"github.com/dcarber/spinesel/internal/pvars"
	"github.com/dcarber/spinesel/internal/selectors"
)

// Sentinel value for truth-only variables evaluated where no truth
// information exists, and for leading-particle variables with no match.
const Invalid = -1.0

// NeutrinoEnergy returns the true neutrino energy, or Invalid for
// non-truth input.
func NeutrinoEnergy(obj model.Interaction) float64 {
	if t, ok := obj.(*model.TruthInteraction); ok {
		return t.NuEnergy
	}
	return Invalid
}

// NeutrinoPDG returns the true neutrino PDG code, or Invalid for non-truth
// input.
func NeutrinoPDG(obj model.Interaction) float64 {
	if t, ok := obj.(*model.TruthInteraction); ok {
		return float64(t.NuPDG)
	}
	return Invalid
}

// ParticleCount returns the length of the particle sequence.
func ParticleCount(obj model.Interaction) float64 {
	return float64(obj.NumParticles())
}

// PrimaryCount returns the number of primary particles under the configured
// scheme.
func PrimaryCount(s *pid.Scheme, obj model.Interaction) float64 {
	n := 0
	for i := 0; i < obj.NumParticles(); i++ {
		if s.Primary(obj.Particle(i)) {
			n++
		}
	}
	return float64(n)
}

// VisibleEnergy returns the total visible energy of the interaction: the sum
// of the best energy estimates of its primaries, with the rest mass added
// back for muons and pions.
func VisibleEnergy(s *pid.Scheme, obj model.Interaction) float64 {
	energy := 0.0
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.Particle(i)
		if !s.Primary(p) {
			continue
		}
		energy += pvars.Energy(s, p)
		switch s.Identify(p) {
		case model.PIDMuon:
			energy += pvars.MuonMass
		case model.PIDPion:
			energy += pvars.PionMass
		}
	}
	return energy
}

// LeadingMuonKE returns the kinetic energy of the leading primary muon, or
// Invalid when the interaction has none.
func LeadingMuonKE(s *pid.Scheme, obj model.Interaction) float64 {
	idx := selectors.LeadingMuon(s, obj, 0)
	if idx == selectors.NoMatch {
		return Invalid
	}
	return pvars.KineticEnergy(s, obj.Particle(idx))
}

// LeadingMuonPt returns the transverse momentum of the leading primary muon,
// or Invalid when the interaction has none.
func LeadingMuonPt(s *pid.Scheme, obj model.Interaction) float64 {
	idx := selectors.LeadingMuon(s, obj, 0)
	if idx == selectors.NoMatch {
		return Invalid
	}
	return pvars.TransverseMomentum(obj.Particle(idx))
}
