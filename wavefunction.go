// wavefunction.go
package baryogen

import (
	"math/rand/v2"
)

/*
WaveFunction represents the decay superposition: both branches exist
simultaneously until a measurement forces a collapse into a definite one.
The draw source is injected instead of taken from the package-level rand so
that a seeded simulator produces reproducible runs.
*/
type WaveFunction struct {
	States      []BranchState
	isCollapsed bool
}

func NewWaveFunction(states []BranchState) *WaveFunction {
	return &WaveFunction{
		States:      states,
		isCollapsed: false,
	}
}

/*
Collapse forces the wave function to choose a definite branch by walking the
cumulative normalized probabilities against a single uniform draw. The first
call collapses; later calls return the branch already settled on.
*/
func (wf *WaveFunction) Collapse(rng *rand.Rand) Branch {
	if len(wf.States) == 0 {
		// Nothing to choose from; settle on the zero branch.
		return Branch(0)
	}
	if wf.isCollapsed {
		return wf.States[0].Value
	}

	normalized := wf.normalizedStates()
	r := rng.Float64()

	var cumulativeProb float64
	for _, state := range normalized {
		if state.Probability == 0 {
			// Unreachable even when the draw lands exactly on its edge.
			continue
		}
		cumulativeProb += state.Probability
		if r <= cumulativeProb {
			wf.States = []BranchState{state}
			wf.isCollapsed = true
			return state.Value
		}
	}

	// Fallback collapse for rounding at the top of the cumulative walk.
	lastState := normalized[len(normalized)-1]
	wf.States = []BranchState{lastState}
	wf.isCollapsed = true
	return lastState.Value
}

/*
normalizedStates rescales the branch probabilities to sum to 1.0 without
mutating the superposition.
*/
func (wf *WaveFunction) normalizedStates() []BranchState {
	normalized := make([]BranchState, len(wf.States))
	copy(normalized, wf.States)

	var total float64
	for _, state := range normalized {
		total += state.Probability
	}

	if total > 0 {
		for i := range normalized {
			normalized[i].Probability /= total
		}
	}

	return normalized
}
