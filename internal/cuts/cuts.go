// Package cuts defines cuts which act on whole interactions. Each cut takes
// an interaction object and returns a boolean; these are the building blocks
// for composing selections. Cuts valid for both representations accept the
// model.Interaction interface. Truth-only cuts are total over both
// representations but only meaningful for truth input: a reconstructed
// interaction simply fails them.
package cuts

import (
	"math"

	"github.com/dcarber/spinesel/internal/geometry"
	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pcuts"
	"github.com/dcarber/spinesel/internal/pid"
	"github.com/dcarber/spinesel/internal/pvars"
	"github.com/dcarber/spinesel/internal/selectors"
)

// NoCut passes every interaction. Useful for unselected spectra.
func NoCut(model.Interaction) bool { return true }

// Fiducial reports whether the interaction vertex lies inside the box.
func Fiducial(box geometry.Box, obj model.Interaction) bool {
	return box.Contains(obj.Vtx())
}

// Neutrino reports whether the interaction is of neutrino origin.
func Neutrino(obj model.Interaction) bool {
	t, ok := obj.(*model.TruthInteraction)
	return ok && t.IsNeutrino
}

// ChargedCurrent reports whether the interaction is charged-current.
func ChargedCurrent(obj model.Interaction) bool {
	t, ok := obj.(*model.TruthInteraction)
	return ok && t.IsCC
}

// ValidFlashMatch reports whether the interaction was matched to an optical
// flash with a valid time.
func ValidFlashMatch(obj model.Interaction) bool {
	r, ok := obj.(*model.RecoInteraction)
	return ok && r.FlashMatched && !math.IsNaN(r.FlashTime)
}

// FlashTime reports whether the interaction is matched to an in-time flash.
// The window corresponds to the BNB beam gate.
func FlashTime(obj model.Interaction) bool {
	if !ValidFlashMatch(obj) {
		return false
	}
	t := obj.(*model.RecoInteraction).FlashTime
	return t >= 0 && t <= 1.6
}

// HasMuon reports whether the interaction has a primary muon with kinetic
// energy at or above keThreshold.
func HasMuon(s *pid.Scheme, obj model.Interaction, keThreshold float64) bool {
	return selectors.LeadingMuon(s, obj, keThreshold) != selectors.NoMatch
}

// HasElectron reports whether the interaction has a primary electron with
// kinetic energy at or above keThreshold.
func HasElectron(s *pid.Scheme, obj model.Interaction, keThreshold float64) bool {
	return selectors.LeadingElectron(s, obj, keThreshold) != selectors.NoMatch
}

// MuonContained reports whether the interaction has a qualifying muon and
// that muon is contained.
func MuonContained(s *pid.Scheme, obj model.Interaction, keThreshold float64) bool {
	idx := selectors.LeadingMuon(s, obj, keThreshold)
	if idx == selectors.NoMatch {
		return false
	}
	return obj.Particle(idx).Contained()
}

// MuonBelowThreshold reports whether the interaction has a leading muon
// whose kinetic energy falls strictly below keThreshold. A muon exactly at
// threshold does not pass.
func MuonBelowThreshold(s *pid.Scheme, obj model.Interaction, keThreshold float64) bool {
	idx := selectors.LeadingMuon(s, obj, 0)
	if idx == selectors.NoMatch {
		return false
	}
	return pvars.KineticEnergy(s, obj.Particle(idx)) < keThreshold
}

// CountPrimaries counts the primaries of each species passing the
// final-state signal requirements.
func CountPrimaries(s *pid.Scheme, obj model.Interaction) [5]int {
	var counts [5]int
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.Particle(i)
		if pcuts.FinalStateSignal(s, p) {
			counts[s.Identify(p)]++
		}
	}
	return counts
}

// Topological1Mu1P reports whether the final state is exactly one muon and
// one proton.
func Topological1Mu1P(s *pid.Scheme, obj model.Interaction) bool {
	c := CountPrimaries(s, obj)
	return c[0] == 0 && c[1] == 0 && c[2] == 1 && c[3] == 0 && c[4] == 1
}

// Topological1MuNP reports whether the final state is exactly one muon and
// at least one proton.
func Topological1MuNP(s *pid.Scheme, obj model.Interaction) bool {
	c := CountPrimaries(s, obj)
	return c[0] == 0 && c[1] == 0 && c[2] == 1 && c[3] == 0 && c[4] >= 1
}

// Topological1MuX reports whether the final state has exactly one muon plus
// anything else.
func Topological1MuX(s *pid.Scheme, obj model.Interaction) bool {
	return CountPrimaries(s, obj)[2] == 1
}

// FiducialContainment reports whether the vertex is fiducial and every
// particle in the interaction is contained.
func FiducialContainment(box geometry.Box, obj model.Interaction) bool {
	if !Fiducial(box, obj) {
		return false
	}
	for i := 0; i < obj.NumParticles(); i++ {
		if !obj.Particle(i).Contained() {
			return false
		}
	}
	return true
}
