package registry

import (
	"errors"
	"sort"
	"testing"

	"github.com/dcarber/spinesel/internal/model"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New[VarFunc]("variable")

	fn := func(obj model.Interaction) float64 { return 42 }
	if err := r.Register("answer", fn, Both); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, scope, err := r.Lookup("answer")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if scope != Both {
		t.Errorf("scope = %v, want Both", scope)
	}
	if v := got(&model.TruthInteraction{}); v != 42 {
		t.Errorf("registered function returned %v, want 42", v)
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	r := New[CutFunc]("cut")
	fn := func(obj model.Interaction) bool { return true }

	if err := r.Register("fiducial", fn, Both); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	err := r.Register("fiducial", fn, TruthOnly)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Register = %v, want ErrDuplicate", err)
	}

	// The original registration survives the failed attempt.
	_, scope, err := r.Lookup("fiducial")
	if err != nil || scope != Both {
		t.Errorf("original registration lost: scope=%v err=%v", scope, err)
	}
}

func TestRegistry_LookupMissing(t *testing.T) {
	r := New[VarFunc]("variable")

	_, _, err := r.Lookup("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup = %v, want ErrNotFound", err)
	}
	if r.Contains("missing") {
		t.Error("Contains should be false for unregistered name")
	}
}

func TestRegistry_Enumerate(t *testing.T) {
	r := New[CutFunc]("cut")
	fn := func(obj model.Interaction) bool { return true }

	names := map[string]Scope{
		"neutrino":  TruthOnly,
		"fiducial":  Both,
		"flash":     RecoOnly,
		"has_muon":  Both,
		"container": Both,
	}
	for name, scope := range names {
		if err := r.Register(name, fn, scope); err != nil {
			t.Fatal(err)
		}
	}

	all := r.Enumerate()
	if len(all) != len(names) {
		t.Fatalf("Enumerate returned %d names, want %d", len(all), len(names))
	}
	if !sort.StringsAreSorted(all) {
		t.Errorf("Enumerate not sorted: %v", all)
	}

	truthAndBoth := r.Enumerate(TruthOnly, Both)
	want := []string{"container", "fiducial", "has_muon", "neutrino"}
	if len(truthAndBoth) != len(want) {
		t.Fatalf("filtered Enumerate = %v, want %v", truthAndBoth, want)
	}
	for i := range want {
		if truthAndBoth[i] != want[i] {
			t.Errorf("filtered Enumerate = %v, want %v", truthAndBoth, want)
			break
		}
	}

	if got := r.Len(); got != len(names) {
		t.Errorf("Len = %d, want %d", got, len(names))
	}
}

func TestScope_String(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{TruthOnly, "truth"},
		{RecoOnly, "reco"},
		{Both, "both"},
		{BothParticle, "both_particle"},
		{Scope(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.scope.String(); got != tt.want {
			t.Errorf("Scope(%d).String() = %q, want %q", tt.scope, got, tt.want)
		}
	}
}

func TestNewSet(t *testing.T) {
	set := NewSet()
	if set.Vars.Len() != 0 || set.Cuts.Len() != 0 || set.ParticleVars.Len() != 0 || set.ParticleCuts.Len() != 0 {
		t.Error("new set should start empty")
	}
}
