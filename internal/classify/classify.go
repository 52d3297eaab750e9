// Package classify implements the cascading category classifier: an ordered
// list of composite conditions evaluated against a truth interaction,
// first match wins. The order is part of the taxonomy: conditions are not
// mutually exclusive by construction, so containment must be tested before
// the looser muon conditions. The rules are kept as data so the order can
// be audited.
package classify

import (
	"github.com/dcarber/spinesel/internal/cuts"
	"github.com/dcarber/spinesel/internal/geometry"
	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pid"
)

// Rule pairs one composite condition with the category it assigns.
type Rule struct {
	Category model.Category
	When     func(t *model.TruthInteraction) bool
}

// Params configure a Classifier.
type Params struct {
	Scheme              *pid.Scheme
	Fiducial            geometry.Box
	Active              geometry.Box
	MuonKEThreshold     float64 // MeV, default 25
	ElectronKEThreshold float64 // MeV, default 25
}

// Classifier assigns each truth interaction exactly one category. A
// Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// New builds a classifier with the reference rule order.
func New(p Params) *Classifier {
	s := p.Scheme
	if s == nil {
		s = pid.Default()
	}
	muonKE := p.MuonKEThreshold
	if muonKE == 0 {
		muonKE = 25
	}
	electronKE := p.ElectronKEThreshold
	if electronKE == 0 {
		electronKE = 25
	}

	fiducial := func(t *model.TruthInteraction) bool { return cuts.Fiducial(p.Fiducial, t) }
	active := func(t *model.TruthInteraction) bool { return cuts.Fiducial(p.Active, t) }
	neutrino := func(t *model.TruthInteraction) bool { return cuts.Neutrino(t) }
	cc := func(t *model.TruthInteraction) bool { return cuts.ChargedCurrent(t) }
	hasMuon := func(t *model.TruthInteraction) bool { return cuts.HasMuon(s, t, muonKE) }
	hasElectron := func(t *model.TruthInteraction) bool { return cuts.HasElectron(s, t, electronKE) }
	muonContained := func(t *model.TruthInteraction) bool { return cuts.MuonContained(s, t, muonKE) }
	muonBelow := func(t *model.TruthInteraction) bool { return cuts.MuonBelowThreshold(s, t, muonKE) }

	return &Classifier{rules: []Rule{
		{model.CategorySignalContained, func(t *model.TruthInteraction) bool {
			return muonContained(t) && fiducial(t) && neutrino(t) && cc(t)
		}},
		{model.CategorySignalUncontained, func(t *model.TruthInteraction) bool {
			return hasMuon(t) && fiducial(t) && neutrino(t) && cc(t)
		}},
		{model.CategoryOutOfPhaseSpace, func(t *model.TruthInteraction) bool {
			return muonBelow(t) && fiducial(t) && neutrino(t) && cc(t)
		}},
		{model.CategoryOutOfFiducial, func(t *model.TruthInteraction) bool {
			return !fiducial(t) && active(t) && hasMuon(t) && neutrino(t) && cc(t)
		}},
		{model.CategoryOutOfActive, func(t *model.TruthInteraction) bool {
			return !active(t) && neutrino(t)
		}},
		{model.CategoryElectronNeutrino, func(t *model.TruthInteraction) bool {
			return active(t) && hasElectron(t) && neutrino(t) && cc(t)
		}},
		{model.CategoryNeutralCurrent, func(t *model.TruthInteraction) bool {
			return active(t) && neutrino(t) && !cc(t)
		}},
		{model.CategoryCosmic, func(t *model.TruthInteraction) bool {
			return !neutrino(t)
		}},
	}}
}

// FromConfig builds a classifier from the configuration, using the default
// identification scheme when s is nil.
func FromConfig(cfg *model.Config, s *pid.Scheme) *Classifier {
	return New(Params{
		Scheme:              s,
		Fiducial:            geometry.FromConfig(cfg.Geometry.Fiducial),
		Active:              geometry.FromConfig(cfg.Geometry.Active),
		MuonKEThreshold:     cfg.Selection.MuonKEThreshold,
		ElectronKEThreshold: cfg.Selection.ElectronKEThreshold,
	})
}

// Classify returns the category of the first matching rule, or
// CategoryOther when no rule matches.
func (c *Classifier) Classify(t *model.TruthInteraction) model.Category {
	for _, r := range c.rules {
		if r.When(t) {
			return r.Category
		}
	}
	return model.CategoryOther
}

// Rules exposes the ordered rule list for auditing.
func (c *Classifier) Rules() []Rule {
	return c.rules
}
