package pvars

import (
	"math"
	"testing"

	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pid"
)

func TestMass(t *testing.T) {
	tests := []struct {
		species model.PID
		want    float64
	}{
		{model.PIDPhoton, 0},
		{model.PIDElectron, ElectronMass},
		{model.PIDMuon, MuonMass},
		{model.PIDPion, PionMass},
		{model.PIDProton, ProtonMass},
	}
	for _, tt := range tests {
		if got := Mass(tt.species); got != tt.want {
			t.Errorf("Mass(%v) = %v, want %v", tt.species, got, tt.want)
		}
	}
}

func TestEnergy_Truth(t *testing.T) {
	s := pid.Default()
	p := &model.TruthParticle{PID: model.PIDMuon, EnergyDeposit: 250, EnergyInit: 400}

	if got := Energy(s, p); got != 250 {
		t.Errorf("truth energy = %v, want deposited 250", got)
	}
}

func TestEnergy_RecoEstimators(t *testing.T) {
	s := pid.Default()

	// Showers are measured calorimetrically even when contained.
	shower := &model.RecoParticle{PID: model.PIDElectron, IsContained: true, CaloKE: 100, CSDAKE: 110, MCSKE: 120}
	if got := Energy(s, shower); got != 100 {
		t.Errorf("shower energy = %v, want calorimetric 100", got)
	}

	// Contained tracks are measured by range.
	contained := &model.RecoParticle{PID: model.PIDMuon, IsContained: true, CaloKE: 100, CSDAKE: 110, MCSKE: 120}
	if got := Energy(s, contained); got != 110 {
		t.Errorf("contained track energy = %v, want range-based 110", got)
	}

	// Exiting tracks are measured by multiple scattering.
	exiting := &model.RecoParticle{PID: model.PIDMuon, IsContained: false, CaloKE: 100, CSDAKE: 110, MCSKE: 120}
	if got := Energy(s, exiting); got != 120 {
		t.Errorf("exiting track energy = %v, want scattering-based 120", got)
	}
}

func TestEnergy_SchemeIndirection(t *testing.T) {
	// A scheme that reassigns the species changes which estimator is used.
	s := &pid.Scheme{
		Primary:  func(p model.Particle) bool { return p.Primary() },
		Identify: func(p model.Particle) model.PID { return model.PIDPhoton },
	}
	track := &model.RecoParticle{PID: model.PIDMuon, IsContained: true, CaloKE: 100, CSDAKE: 110}
	if got := Energy(s, track); got != 100 {
		t.Errorf("reassigned shower energy = %v, want calorimetric 100", got)
	}
}

func TestKineticEnergy(t *testing.T) {
	s := pid.Default()

	truth := &model.TruthParticle{PID: model.PIDMuon, EnergyInit: 400}
	want := 400 - MuonMass
	if got := KineticEnergy(s, truth); math.Abs(got-want) > 1e-9 {
		t.Errorf("truth KE = %v, want %v", got, want)
	}

	reco := &model.RecoParticle{PID: model.PIDMuon, IsContained: true, CSDAKE: 300}
	if got := KineticEnergy(s, reco); got != 300 {
		t.Errorf("reco KE = %v, want estimator value 300", got)
	}
}

func TestTransverseMomentum(t *testing.T) {
	p := &model.TruthParticle{Momentum: model.Vec3{X: 3, Y: 4, Z: 100}}
	if got := TransverseMomentum(p); math.Abs(got-5) > 1e-12 {
		t.Errorf("pt = %v, want 5", got)
	}
}

func TestAngles(t *testing.T) {
	forward := &model.TruthParticle{StartDir: model.Vec3{Z: 1}}
	if got := PolarAngle(forward); got != 0 {
		t.Errorf("polar angle of forward direction = %v, want 0", got)
	}

	transverse := &model.TruthParticle{StartDir: model.Vec3{X: 1}}
	if got := PolarAngle(transverse); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("polar angle of transverse direction = %v, want pi/2", got)
	}
	if got := AzimuthalAngle(transverse); got != 0 {
		t.Errorf("azimuthal angle along +x = %v, want 0", got)
	}

	up := &model.TruthParticle{StartDir: model.Vec3{Y: 1}}
	if got := AzimuthalAngle(up); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("azimuthal angle along +y = %v, want pi/2", got)
	}
}

func TestAzimuthalAngle_Longitudinal(t *testing.T) {
	p := &model.TruthParticle{StartDir: model.Vec3{Z: 1}}
	if got := AzimuthalAngle(p); !math.IsNaN(got) {
		t.Errorf("azimuthal angle of longitudinal direction = %v, want NaN", got)
	}
}
