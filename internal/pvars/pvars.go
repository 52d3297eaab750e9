// Package pvars defines variables which act on single particles. Each
// variable is a function taking one particle, in either representation, and
// returning a float64. Variables valid for both representations produce the
// representation-appropriate derivation from a single named function.
package pvars

import (
	"math"

	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pid"
)

// Rest masses in MeV/c^2.
const (
	ElectronMass = 0.5109989461
	MuonMass     = 105.6583745
	PionMass     = 139.57039
	ProtonMass   = 938.2720813
)

// Mass returns the rest mass for the species, or zero for species without a
// tabulated mass (photons).
func Mass(s model.PID) float64 {
	switch s {
	case model.PIDElectron:
		return ElectronMass
	case model.PIDMuon:
		return MuonMass
	case model.PIDPion:
		return PionMass
	case model.PIDProton:
		return ProtonMass
	default:
		return 0
	}
}

// Energy returns the best estimate of the particle energy. Truth particles
// report their deposited energy. Reconstructed showers can only be measured
// calorimetrically; reconstructed tracks are measured by range if contained
// and by multiple scattering if exiting.
func Energy(s *pid.Scheme, p model.Particle) float64 {
	switch q := p.(type) {
	case *model.TruthParticle:
		return q.EnergyDeposit
	case *model.RecoParticle:
		if s.Identify(p).IsShower() {
			return q.CaloKE
		}
		if q.IsContained {
			return q.CSDAKE
		}
		return q.MCSKE
	default:
		return 0
	}
}

// KineticEnergy returns the kinetic energy of the particle. For truth
// particles this is the initial energy minus the rest mass of the assigned
// species. The reconstructed estimators already measure kinetic energy, so
// the best estimate is returned directly.
func KineticEnergy(s *pid.Scheme, p model.Particle) float64 {
	if t, ok := p.(*model.TruthParticle); ok {
		return t.EnergyInit - Mass(s.Identify(p))
	}
	return Energy(s, p)
}

// TransverseMomentum returns the momentum component transverse to the beam
// (z) axis.
func TransverseMomentum(p model.Particle) float64 {
	return p.Mom().NormXY()
}

// PolarAngle returns the angle of the start direction with respect to the
// beam (z) axis.
func PolarAngle(p model.Particle) float64 {
	return math.Acos(p.Dir().Z)
}

// AzimuthalAngle returns the angle of the start direction around the beam
// axis. For a purely longitudinal direction the angle is undefined and NaN
// is returned; callers must guard before using the value.
func AzimuthalAngle(p model.Particle) float64 {
	d := p.Dir()
	norm := d.NormXY()
	if norm == 0 {
		return math.NaN()
	}
	return math.Acos(d.X / norm)
}
