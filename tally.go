package baryogen

/*
Tally aggregates trial outcomes into per-branch counts plus a histogram of
raw bitstrings, the shape a counts map from a circuit backend would have.
Outcomes carry no identity once recorded; only the counts survive.
*/
type Tally struct {
	Matter     int
	Antimatter int
	Counts     map[string]int
}

func NewTally() *Tally {
	return &Tally{
		Counts: make(map[string]int),
	}
}

// Record adds one realized outcome. An undecayed state (X boson still
// present) lands in the histogram but in neither branch count.
func (t *Tally) Record(outcome ParticleState) {
	if outcome.Quark {
		t.Matter++
	}
	if outcome.Antiquark {
		t.Antimatter++
	}
	t.Counts[outcome.Bitstring()]++
}

// Total returns the number of decays tallied.
func (t *Tally) Total() int {
	return t.Matter + t.Antimatter
}

// Asymmetry returns (N_matter − N_antimatter) / (N_matter + N_antimatter),
// or 0 when nothing has decayed yet.
func (t *Tally) Asymmetry() float64 {
	total := t.Matter + t.Antimatter
	if total == 0 {
		return 0
	}
	return float64(t.Matter-t.Antimatter) / float64(total)
}
