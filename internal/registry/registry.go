// Package registry provides the name-keyed catalog of variables and cuts.
// The registry is populated once, single-threaded, before any interaction is
// processed; after that it is read-only, so analysis workers may consult it
// concurrently without locking. Duplicate names are a fatal setup error:
// silently overwriting would make two differently-scoped functions with the
// same name indistinguishable to downstream configuration.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dcarber/spinesel/internal/model"
)

// ErrDuplicate is returned when a name is registered twice.
var ErrDuplicate = errors.New("name already registered")

// ErrNotFound is returned when a lookup names an unregistered function.
var ErrNotFound = errors.New("name not registered")

// Scope declares which record representation(s) a registered function
// accepts. Registering a function under Both or BothParticle when it cannot
// handle both representations is a contract violation.
type Scope int

const (
	TruthOnly    Scope = iota // Interaction-level, truth representation only
	RecoOnly                  // Interaction-level, reconstructed representation only
	Both                      // Interaction-level, either representation
	BothParticle              // Particle-level, either representation
)

func (s Scope) String() string {
	switch s {
	case TruthOnly:
		return "truth"
	case RecoOnly:
		return "reco"
	case Both:
		return "both"
	case BothParticle:
		return "both_particle"
	default:
		return "unknown"
	}
}

// Function signatures stored in the registries.
type (
	VarFunc         func(obj model.Interaction) float64
	CutFunc         func(obj model.Interaction) bool
	ParticleVarFunc func(p model.Particle) float64
	ParticleCutFunc func(p model.Particle) bool
)

type entry[F any] struct {
	fn    F
	scope Scope
}

// Registry is a name-keyed table of functions of one signature, each tagged
// with the representation scope it supports.
type Registry[F any] struct {
	kind    string // used in error messages: "variable" or "cut"
	entries map[string]entry[F]
}

// New creates an empty registry. The kind labels error messages.
func New[F any](kind string) *Registry[F] {
	return &Registry[F]{
		kind:    kind,
		entries: make(map[string]entry[F]),
	}
}

// Register inserts fn under name with the given scope. Registering an
// existing name fails with ErrDuplicate.
func (r *Registry[F]) Register(name string, fn F, scope Scope) error {
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrDuplicate)
	}
	r.entries[name] = entry[F]{fn: fn, scope: scope}
	return nil
}

// Lookup retrieves the function and scope registered under name.
func (r *Registry[F]) Lookup(name string) (F, Scope, error) {
	e, ok := r.entries[name]
	if !ok {
		var zero F
		return zero, 0, fmt.Errorf("lookup %s %q: %w", r.kind, name, ErrNotFound)
	}
	return e.fn, e.scope, nil
}

// Contains reports whether a function is registered under name.
func (r *Registry[F]) Contains(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Enumerate returns the sorted names of every registered function. With
// scope filters, only names registered under one of the given scopes are
// returned.
func (r *Registry[F]) Enumerate(scopes ...Scope) []string {
	var names []string
	for name, e := range r.entries {
		if len(scopes) > 0 && !scopeMatch(e.scope, scopes) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered functions.
func (r *Registry[F]) Len() int {
	return len(r.entries)
}

func scopeMatch(s Scope, scopes []Scope) bool {
	for _, want := range scopes {
		if s == want {
			return true
		}
	}
	return false
}

// Set bundles the four registries used by the analysis: interaction-level
// and particle-level variables and cuts.
type Set struct {
	Vars         *Registry[VarFunc]
	Cuts         *Registry[CutFunc]
	ParticleVars *Registry[ParticleVarFunc]
	ParticleCuts *Registry[ParticleCutFunc]
}

// NewSet creates an empty registry set.
func NewSet() *Set {
	return &Set{
		Vars:         New[VarFunc]("variable"),
		Cuts:         New[CutFunc]("cut"),
		ParticleVars: New[ParticleVarFunc]("particle variable"),
		ParticleCuts: New[ParticleCutFunc]("particle cut"),
	}
}
