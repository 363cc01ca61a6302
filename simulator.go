package baryogen

import (
	"fmt"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

/*
Simulator is the probabilistic backend decays are sampled on. It stays opaque
to callers: all it promises is that, given a decay model and a shot count, it
draws that many outcomes from the model's distribution.
*/
type Simulator interface {
	Run(model *DecayModel, shots int) (*Tally, error)
}

// LocalSimulator samples decays sequentially from a single seeded source.
// Trials are independent, so the aggregation order never matters.
type LocalSimulator struct {
	rng *rand.Rand
}

func NewLocalSimulator(seed uint64) *LocalSimulator {
	return &LocalSimulator{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

/*
Run performs shots independent decay trials. Each trial prepares the initial
state, collapses the decay superposition, realizes the chosen branch into
particle content, and validates conservation before tallying. A conservation
violation is a hard error; outcomes are never corrected.
*/
func (s *LocalSimulator) Run(model *DecayModel, shots int) (*Tally, error) {
	if model == nil {
		return nil, fmt.Errorf("no decay model")
	}
	if shots < 1 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}

	errnie.Info("LocalSimulator.Run - epsilon %v, shots %v", model.Epsilon, shots)

	tally := NewTally()
	for trial := 0; trial < shots; trial++ {
		initial := NewInitialState()
		if err := initial.Validate(); err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		wf := NewWaveFunction(model.States())
		branch := wf.Collapse(s.rng)
		outcome := model.Realize(branch)

		if err := outcome.Validate(); err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}
		tally.Record(outcome)
	}

	return tally, nil
}
