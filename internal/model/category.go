package model

// Category is the mutually-exclusive truth classification assigned to each
// interaction by the cascading classifier. Exactly one category is assigned
// per interaction; CategoryOther is the exhaustive fallback and a real input
// landing there signals a gap in the taxonomy, not an error.
type Category int

const (
	CategorySignalContained   Category = 0 // 1muX with contained muon, fiducial
	CategorySignalUncontained Category = 1 // 1muX with exiting muon, fiducial
	CategoryOutOfPhaseSpace   Category = 2 // 1muX with muon below KE threshold
	CategoryOutOfFiducial     Category = 3 // 1muX in active volume but out of FV
	CategoryOutOfActive       Category = 4 // Neutrino outside the active volume
	CategoryElectronNeutrino  Category = 5 // nue CC in the active volume
	CategoryNeutralCurrent    Category = 6 // NC in the active volume
	CategoryCosmic            Category = 7 // Non-neutrino origin
	CategoryOther             Category = 8 // Fallback bucket
)

// NumCategories is the size of the closed category taxonomy.
const NumCategories = 9

func (c Category) String() string {
	switch c {
	case CategorySignalContained:
		return "signal_contained"
	case CategorySignalUncontained:
		return "signal_uncontained"
	case CategoryOutOfPhaseSpace:
		return "out_of_phase_space"
	case CategoryOutOfFiducial:
		return "out_of_fiducial"
	case CategoryOutOfActive:
		return "out_of_active"
	case CategoryElectronNeutrino:
		return "electron_neutrino"
	case CategoryNeutralCurrent:
		return "neutral_current"
	case CategoryCosmic:
		return "cosmic"
	default:
		return "other"
	}
}
