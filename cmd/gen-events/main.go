// Test program to generate synthetic events for the classifier
// This produces NDJSON input covering every interaction category
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/dcarber/spinesel/internal/model"
)

func main() {
	count := flag.Int("n", 100, "number of events to generate")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	enc := json.NewEncoder(os.Stdout)

	for i := 0; i < *count; i++ {
		ev := makeEvent(rng, int64(i))
		if err := enc.Encode(ev); err != nil {
			fmt.Fprintf(os.Stderr, "encode event %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "generated %d events\n", *count)
}

// makeEvent builds one event whose truth interaction lands in a category
// chosen by the event number, cycling through all of them.
func makeEvent(rng *rand.Rand, n int64) model.Event {
	vtxIn := model.Vec3{X: jitter(rng, 0, 80), Y: jitter(rng, 0, 80), Z: jitter(rng, 230, 100)}
	vtxEdge := model.Vec3{X: 196, Y: jitter(rng, 0, 80), Z: jitter(rng, 230, 100)}
	vtxOut := model.Vec3{X: 260, Y: 0, Z: 230}

	truth := model.TruthInteraction{
		ID:         n,
		Vertex:     vtxIn,
		IsNeutrino: true,
		IsCC:       true,
		NuEnergy:   600 + rng.Float64()*2000,
		NuPDG:      14,
	}

	switch n % 9 {
	case 0: // contained signal muon
		truth.Particles = []model.TruthParticle{muon(vtxIn, 400, true), proton(vtxIn, 120)}
	case 1: // exiting signal muon
		truth.Particles = []model.TruthParticle{muon(vtxIn, 900, false), proton(vtxIn, 120)}
	case 2: // muon below threshold
		truth.Particles = []model.TruthParticle{muon(vtxIn, 10, true), proton(vtxIn, 120)}
	case 3: // vertex outside fiducial, inside active
		truth.Vertex = vtxEdge
		truth.Particles = []model.TruthParticle{muon(vtxEdge, 400, true)}
	case 4: // vertex outside active volume
		truth.Vertex = vtxOut
		truth.Particles = []model.TruthParticle{muon(vtxOut, 400, true)}
	case 5: // electron neutrino
		truth.NuPDG = 12
		truth.Particles = []model.TruthParticle{electron(vtxIn, 500)}
	case 6: // neutral current
		truth.IsCC = false
		truth.Particles = []model.TruthParticle{proton(vtxIn, 200)}
	case 7: // cosmic
		truth.IsNeutrino = false
		truth.IsCC = false
		truth.NuPDG = 0
		truth.Particles = []model.TruthParticle{muon(vtxIn, 2000, false)}
	case 8: // other: CC numu in fiducial with no muon at all
		truth.Particles = []model.TruthParticle{proton(vtxIn, 200), proton(vtxIn, 80)}
	}

	reco := model.RecoInteraction{
		ID:           n,
		Vertex:       truth.Vertex,
		FlashMatched: true,
		FlashTime:    rng.Float64() * 1.6,
		MatchIDs:     []int64{n},
	}
	for _, tp := range truth.Particles {
		reco.Particles = append(reco.Particles, smear(rng, tp))
	}

	return model.Event{
		Run:   1,
		Event: n,
		Truth: []model.TruthInteraction{truth},
		Reco:  []model.RecoInteraction{reco},
	}
}

func muon(vtx model.Vec3, ke float64, contained bool) model.TruthParticle {
	end := model.Vec3{X: vtx.X, Y: vtx.Y, Z: vtx.Z + ke/2}
	if !contained {
		end.Z = 520
	}
	return model.TruthParticle{
		PID:           model.PIDMuon,
		IsPrimary:     true,
		IsContained:   contained,
		StartPoint:    vtx,
		EndPoint:      end,
		Momentum:      model.Vec3{Z: ke}, // crude, good enough for smoke tests
		StartDir:      model.Vec3{Z: 1},
		EnergyInit:    ke + 105.6583745,
		EnergyDeposit: ke,
	}
}

func proton(vtx model.Vec3, ke float64) model.TruthParticle {
	return model.TruthParticle{
		PID:           model.PIDProton,
		IsPrimary:     true,
		IsContained:   true,
		StartPoint:    vtx,
		EndPoint:      model.Vec3{X: vtx.X + ke/10, Y: vtx.Y, Z: vtx.Z},
		Momentum:      model.Vec3{X: ke},
		StartDir:      model.Vec3{X: 1},
		EnergyInit:    ke + 938.2720813,
		EnergyDeposit: ke,
	}
}

func electron(vtx model.Vec3, ke float64) model.TruthParticle {
	return model.TruthParticle{
		PID:           model.PIDElectron,
		IsPrimary:     true,
		IsContained:   true,
		StartPoint:    vtx,
		EndPoint:      model.Vec3{X: vtx.X, Y: vtx.Y + ke/4, Z: vtx.Z},
		Momentum:      model.Vec3{Y: ke},
		StartDir:      model.Vec3{Y: 1},
		EnergyInit:    ke + 0.5109989461,
		EnergyDeposit: ke,
	}
}

// smear turns a truth particle into a plausible reconstructed one.
func smear(rng *rand.Rand, tp model.TruthParticle) model.RecoParticle {
	rp := model.RecoParticle{
		PID:         tp.PID,
		IsPrimary:   tp.IsPrimary,
		IsContained: tp.IsContained,
		StartPoint:  tp.StartPoint,
		EndPoint:    tp.EndPoint,
		Momentum:    tp.Momentum,
		StartDir:    tp.StartDir,
	}
	ke := tp.EnergyDeposit * (0.9 + rng.Float64()*0.2)
	rp.CaloKE = ke
	rp.CSDAKE = ke
	rp.MCSKE = ke
	rp.PIDScores[tp.PID] = 0.95
	if tp.IsPrimary {
		rp.PrimaryScores = [2]float64{0.1, 0.9}
	} else {
		rp.PrimaryScores = [2]float64{0.9, 0.1}
	}
	return rp
}

func jitter(rng *rand.Rand, center, spread float64) float64 {
	return center + (rng.Float64()*2-1)*spread
}
