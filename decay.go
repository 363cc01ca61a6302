package baryogen

import (
	"fmt"
	"math"

	"github.com/theapemachine/errnie"
)

// Branch identifies a decay channel of the X boson.
type Branch int

const (
	BranchMatter     Branch = iota // X → quark + lepton
	BranchAntimatter               // X → antiquark + antilepton
)

func (b Branch) String() string {
	if b == BranchMatter {
		return "matter"
	}
	return "antimatter"
}

/*
DecayModel is the CP-violating decay of a single X boson. Epsilon skews the
split between the two channels: X → q+l with probability (1+epsilon)/2 and
X → q̄+l̄ with probability (1-epsilon)/2, so the expected asymmetry over many
decays is epsilon itself.
*/
type DecayModel struct {
	Epsilon float64
}

// NewDecayModel rejects epsilon outside [-1, 1] before any sampling can
// happen; outside that interval the branch probabilities leave [0, 1].
func NewDecayModel(epsilon float64) (*DecayModel, error) {
	if math.IsNaN(epsilon) || epsilon < -1 || epsilon > 1 {
		return nil, fmt.Errorf("epsilon %v out of range [-1, 1]", epsilon)
	}

	errnie.Info("NewDecayModel - epsilon %v", epsilon)
	return &DecayModel{Epsilon: epsilon}, nil
}

/*
States returns the two-branch superposition read off the branch qubit. The
matter amplitude is the |1⟩ amplitude of that qubit, the antimatter amplitude
the |0⟩ amplitude; no other branch exists, so conservation holds for every
outcome by construction rather than by filtering.
*/
func (dm *DecayModel) States() []BranchState {
	qubit := dm.branchQubit()
	pMatter := qubit.ProbabilityOne()

	return []BranchState{
		{Value: BranchMatter, Probability: pMatter, Amplitude: qubit.beta},
		{Value: BranchAntimatter, Probability: 1 - pMatter, Amplitude: qubit.alpha},
	}
}

// branchQubit prepares the quark-presence qubit the way the gate formulation
// does: RY by theta = 2·arcsin(√p_matter) applied to |0⟩.
func (dm *DecayModel) branchQubit() *Qubit {
	pMatter := (1 + dm.Epsilon) / 2
	qubit := NewQubit(1, 0)
	qubit.ApplyRY(2 * math.Asin(math.Sqrt(pMatter)))
	return qubit
}

// Realize produces the post-decay particle content for a branch. Pair
// creation and X annihilation happen together.
func (dm *DecayModel) Realize(branch Branch) ParticleState {
	if branch == BranchMatter {
		return ParticleState{Quark: true, Lepton: true}
	}
	return ParticleState{Antiquark: true, Antilepton: true}
}
