package model

// Interaction is the common accessor surface shared by the truth and
// reconstructed interaction representations. An interaction exclusively owns
// its particle sequence; the sequence may be empty and every consumer must
// tolerate that.
type Interaction interface {
	// NumParticles returns the length of the particle sequence.
	NumParticles() int
	// Particle returns the particle at index i in its representation.
	Particle(i int) Particle
	Vtx() Vec3
}

// TruthInteraction is one interaction in the ground-truth representation.
type TruthInteraction struct {
	ID            int64           `json:"interaction_id"`
	Particles     []TruthParticle `json:"particles"`
	Vertex        Vec3            `json:"vertex"`      // True vertex position (cm)
	IsNeutrino    bool            `json:"is_neutrino"` // Neutrino origin (false for cosmics)
	IsCC          bool            `json:"is_cc"`       // Charged-current interaction
	NuEnergy      float64         `json:"nu_energy"`   // True neutrino energy (MeV)
	NuPDG         int             `json:"nu_pdg"`      // Neutrino PDG code
	MatchIDs      []int64         `json:"match_ids,omitempty"`
	MatchOverlaps []float64       `json:"match_overlaps,omitempty"`
}

func (t *TruthInteraction) NumParticles() int       { return len(t.Particles) }
func (t *TruthInteraction) Particle(i int) Particle { return &t.Particles[i] }
func (t *TruthInteraction) Vtx() Vec3               { return t.Vertex }

// RecoInteraction is one interaction in the reconstructed representation.
type RecoInteraction struct {
	ID            int64          `json:"interaction_id"`
	Particles     []RecoParticle `json:"particles"`
	Vertex        Vec3           `json:"vertex"`           // Reconstructed vertex position (cm)
	FlashMatched  bool           `json:"is_flash_matched"` // Matched to an optical flash
	FlashTime     float64        `json:"flash_time"`       // Time of the matched flash (us)
	MatchIDs      []int64        `json:"match_ids,omitempty"`
	MatchOverlaps []float64      `json:"match_overlaps,omitempty"`
}

func (r *RecoInteraction) NumParticles() int       { return len(r.Particles) }
func (r *RecoInteraction) Particle(i int) Particle { return &r.Particles[i] }
func (r *RecoInteraction) Vtx() Vec3               { return r.Vertex }

// Event is one detector readout: the truth and reconstructed interaction
// sequences produced by the upstream reconstruction for a single trigger.
type Event struct {
	Run   int64              `json:"run"`
	Event int64              `json:"event"`
	Truth []TruthInteraction `json:"truth"`
	Reco  []RecoInteraction  `json:"reco"`
}
