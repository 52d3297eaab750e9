package model

import "math"

// PID is the species assignment produced upstream by the reconstruction.
// The codes follow the SPINE convention: showers first, then tracks.
type PID int

const (
	PIDPhoton   PID = 0
	PIDElectron PID = 1
	PIDMuon     PID = 2
	PIDPion     PID = 3
	PIDProton   PID = 4
)

// IsShower reports whether the species is reconstructed as a shower.
// Showers can only be measured calorimetrically.
func (p PID) IsShower() bool {
	return p < 2
}

func (p PID) String() string {
	switch p {
	case PIDPhoton:
		return "photon"
	case PIDElectron:
		return "electron"
	case PIDMuon:
		return "muon"
	case PIDPion:
		return "pion"
	case PIDProton:
		return "proton"
	default:
		return "unknown"
	}
}

// Vec3 is a 3-component point, momentum, or direction vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// NormXY returns the Euclidean norm of the transverse (x,y) components.
func (v Vec3) NormXY() float64 {
	return math.Hypot(v.X, v.Y)
}

// Particle is the common accessor surface shared by the truth and
// reconstructed particle representations. Variables and cuts that are valid
// for both representations operate against this interface; functions that
// need representation-specific fields (deposited energy, calorimetric
// estimates) type-switch on the concrete record.
type Particle interface {
	// Species returns the upstream species assignment stored in the record.
	Species() PID
	// Primary reports the upstream primary/secondary designation.
	Primary() bool
	// Contained reports whether every point of the particle is contained.
	Contained() bool
	Start() Vec3
	End() Vec3
	Mom() Vec3
	// Dir returns the unit direction at the particle start point.
	Dir() Vec3
}

// TruthParticle is one particle in the ground-truth representation.
type TruthParticle struct {
	PID           PID     `json:"pid"`            // Species code
	IsPrimary     bool    `json:"is_primary"`     // Primary designation from generator
	IsContained   bool    `json:"is_contained"`   // All energy deposits contained
	StartPoint    Vec3    `json:"start_point"`    // Start position (cm)
	EndPoint      Vec3    `json:"end_point"`      // End position (cm)
	Momentum      Vec3    `json:"momentum"`       // Initial momentum (MeV/c)
	StartDir      Vec3    `json:"start_dir"`      // Unit direction at start
	EnergyInit    float64 `json:"energy_init"`    // Total initial energy (MeV)
	EnergyDeposit float64 `json:"energy_deposit"` // Deposited energy (MeV)
}

func (p *TruthParticle) Species() PID    { return p.PID }
func (p *TruthParticle) Primary() bool   { return p.IsPrimary }
func (p *TruthParticle) Contained() bool { return p.IsContained }
func (p *TruthParticle) Start() Vec3     { return p.StartPoint }
func (p *TruthParticle) End() Vec3       { return p.EndPoint }
func (p *TruthParticle) Mom() Vec3       { return p.Momentum }
func (p *TruthParticle) Dir() Vec3       { return p.StartDir }

// RecoParticle is one particle in the reconstructed representation. The
// species and primary assignments are argmax decisions over the softmax
// scores; the scores themselves are kept so that a custom identification
// scheme can re-derive the assignment with different thresholds.
type RecoParticle struct {
	PID           PID        `json:"pid"`            // Upstream argmax species assignment
	PIDScores     [5]float64 `json:"pid_scores"`     // Softmax species scores
	IsPrimary     bool       `json:"is_primary"`     // Upstream primary designation
	PrimaryScores [2]float64 `json:"primary_scores"` // Softmax secondary/primary scores
	IsContained   bool       `json:"is_contained"`   // All points within containment volume
	StartPoint    Vec3       `json:"start_point"`    // Start position (cm)
	EndPoint      Vec3       `json:"end_point"`      // End position (cm)
	Momentum      Vec3       `json:"momentum"`       // Reconstructed momentum (MeV/c)
	StartDir      Vec3       `json:"start_dir"`      // Unit direction at start
	CaloKE        float64    `json:"calo_ke"`        // Calorimetric energy estimate (MeV)
	CSDAKE        float64    `json:"csda_ke"`        // Range-based energy estimate (MeV)
	MCSKE         float64    `json:"mcs_ke"`         // Multiple-scattering estimate (MeV)
}

func (p *RecoParticle) Species() PID    { return p.PID }
func (p *RecoParticle) Primary() bool   { return p.IsPrimary }
func (p *RecoParticle) Contained() bool { return p.IsContained }
func (p *RecoParticle) Start() Vec3     { return p.StartPoint }
func (p *RecoParticle) End() Vec3       { return p.EndPoint }
func (p *RecoParticle) Mom() Vec3       { return p.Momentum }
func (p *RecoParticle) Dir() Vec3       { return p.StartDir }
