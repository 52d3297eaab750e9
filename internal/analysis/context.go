// Package analysis wires the selection together: it builds the immutable
// per-run context (identification scheme, detector geometry, thresholds,
// classifier) and populates the registry with every named variable and cut.
// The host program creates one Context before spawning workers; after that
// nothing in the context mutates.
package analysis

import (
	"fmt"

	"github.com/dcarber/spinesel/internal/classify"
	"github.com/dcarber/spinesel/internal/cuts"
	"github.com/dcarber/spinesel/internal/geometry"
	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pcuts"
	"github.com/dcarber/spinesel/internal/pid"
	"github.com/dcarber/spinesel/internal/pvars"
	"github.com/dcarber/spinesel/internal/registry"
	"github.com/dcarber/spinesel/internal/vars"
)

// Boundary margin for the throughgoing tag, in cm.
const boundaryMargin = 5.0

// Context is the immutable per-run analysis state.
type Context struct {
	Scheme     *pid.Scheme
	Fiducial   geometry.Box
	Active     geometry.Box
	Classifier *classify.Classifier
	Registries *registry.Set

	muonKE     float64
	electronKE float64
}

// NewContext validates the geometry, builds the classifier, and registers
// the default variables and cuts. The scheme may be nil, in which case the
// upstream record assignments are used. NewContext must be called exactly
// once per run, before any concurrent processing starts.
func NewContext(cfg *model.Config, scheme *pid.Scheme) (*Context, error) {
	if scheme == nil {
		scheme = pid.Default()
	}
	fiducial := geometry.FromConfig(cfg.Geometry.Fiducial)
	active := geometry.FromConfig(cfg.Geometry.Active)
	if err := geometry.Validate(fiducial, active); err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}

	ctx := &Context{
		Scheme:     scheme,
		Fiducial:   fiducial,
		Active:     active,
		Classifier: classify.FromConfig(cfg, scheme),
		Registries: registry.NewSet(),
		muonKE:     cfg.Selection.MuonKEThreshold,
		electronKE: cfg.Selection.ElectronKEThreshold,
	}
	if err := ctx.registerDefaults(); err != nil {
		return nil, fmt.Errorf("register defaults: %w", err)
	}
	return ctx, nil
}

// registerDefaults populates the registry set with the built-in variables
// and cuts, each bound to this context's scheme, geometry, and thresholds.
func (c *Context) registerDefaults() error {
	s := c.Scheme
	r := &registrar{set: c.Registries}

	// Interaction variables.
	r.variable("neutrino_energy", vars.NeutrinoEnergy, registry.TruthOnly)
	r.variable("neutrino_pdg", vars.NeutrinoPDG, registry.TruthOnly)
	r.variable("particle_count", vars.ParticleCount, registry.Both)
	r.variable("primary_count", func(obj model.Interaction) float64 {
		return vars.PrimaryCount(s, obj)
	}, registry.Both)
	r.variable("visible_energy", func(obj model.Interaction) float64 {
		return vars.VisibleEnergy(s, obj)
	}, registry.Both)
	r.variable("leading_muon_ke", func(obj model.Interaction) float64 {
		return vars.LeadingMuonKE(s, obj)
	}, registry.Both)
	r.variable("leading_muon_pt", func(obj model.Interaction) float64 {
		return vars.LeadingMuonPt(s, obj)
	}, registry.Both)
	r.variable("category", func(obj model.Interaction) float64 {
		t, ok := obj.(*model.TruthInteraction)
		if !ok {
			return vars.Invalid
		}
		return float64(c.Classifier.Classify(t))
	}, registry.TruthOnly)

	// Interaction cuts.
	r.cut("no_cut", cuts.NoCut, registry.Both)
	r.cut("fiducial", func(obj model.Interaction) bool {
		return cuts.Fiducial(c.Fiducial, obj)
	}, registry.Both)
	r.cut("active_volume", func(obj model.Interaction) bool {
		return cuts.Fiducial(c.Active, obj)
	}, registry.Both)
	r.cut("fiducial_containment", func(obj model.Interaction) bool {
		return cuts.FiducialContainment(c.Fiducial, obj)
	}, registry.Both)
	r.cut("neutrino", cuts.Neutrino, registry.TruthOnly)
	r.cut("charged_current", cuts.ChargedCurrent, registry.TruthOnly)
	r.cut("valid_flash_match", cuts.ValidFlashMatch, registry.RecoOnly)
	r.cut("flash_time", cuts.FlashTime, registry.RecoOnly)
	r.cut("has_muon", func(obj model.Interaction) bool {
		return cuts.HasMuon(s, obj, c.muonKE)
	}, registry.Both)
	r.cut("has_electron", func(obj model.Interaction) bool {
		return cuts.HasElectron(s, obj, c.electronKE)
	}, registry.Both)
	r.cut("muon_contained", func(obj model.Interaction) bool {
		return cuts.MuonContained(s, obj, c.muonKE)
	}, registry.Both)
	r.cut("muon_below_threshold", func(obj model.Interaction) bool {
		return cuts.MuonBelowThreshold(s, obj, c.muonKE)
	}, registry.Both)
	r.cut("topological_1mu1p", func(obj model.Interaction) bool {
		return cuts.Topological1Mu1P(s, obj)
	}, registry.Both)
	r.cut("topological_1munp", func(obj model.Interaction) bool {
		return cuts.Topological1MuNP(s, obj)
	}, registry.Both)
	r.cut("topological_1mux", func(obj model.Interaction) bool {
		return cuts.Topological1MuX(s, obj)
	}, registry.Both)
	r.cut("all_1mux", func(obj model.Interaction) bool {
		return cuts.FiducialContainment(c.Fiducial, obj) &&
			cuts.FlashTime(obj) &&
			cuts.Topological1MuX(s, obj)
	}, registry.RecoOnly)

	// Particle variables.
	r.particleVariable("energy", func(p model.Particle) float64 {
		return pvars.Energy(s, p)
	}, registry.BothParticle)
	r.particleVariable("ke", func(p model.Particle) float64 {
		return pvars.KineticEnergy(s, p)
	}, registry.BothParticle)
	r.particleVariable("transverse_momentum", pvars.TransverseMomentum, registry.BothParticle)
	r.particleVariable("polar_angle", pvars.PolarAngle, registry.BothParticle)
	r.particleVariable("azimuthal_angle", pvars.AzimuthalAngle, registry.BothParticle)

	// Particle cuts.
	r.particleCut("is_primary", func(p model.Particle) bool {
		return pcuts.IsPrimary(s, p)
	}, registry.BothParticle)
	r.particleCut("final_state_signal", func(p model.Particle) bool {
		return pcuts.FinalStateSignal(s, p)
	}, registry.BothParticle)
	r.particleCut("throughgoing", func(p model.Particle) bool {
		return pcuts.Throughgoing(s, c.Active, boundaryMargin, p)
	}, registry.BothParticle)

	return r.err
}

// registrar sequences registrations and keeps the first failure. Any
// duplicate aborts the whole setup.
type registrar struct {
	set *registry.Set
	err error
}

func (r *registrar) variable(name string, fn registry.VarFunc, scope registry.Scope) {
	if r.err == nil {
		r.err = r.set.Vars.Register(name, fn, scope)
	}
}

func (r *registrar) cut(name string, fn registry.CutFunc, scope registry.Scope) {
	if r.err == nil {
		r.err = r.set.Cuts.Register(name, fn, scope)
	}
}

func (r *registrar) particleVariable(name string, fn registry.ParticleVarFunc, scope registry.Scope) {
	if r.err == nil {
		r.err = r.set.ParticleVars.Register(name, fn, scope)
	}
}

func (r *registrar) particleCut(name string, fn registry.ParticleCutFunc, scope registry.Scope) {
	if r.err == nil {
		r.err = r.set.ParticleCuts.Register(name, fn, scope)
	}
}
