package baryogen

/*
BranchState represents a possible decay branch with its probability and
probability amplitude. Only the squared modulus of the amplitude matters to
measurement; the amplitude itself is kept because it is what the gate
formulation of the decay actually prepares.
*/
type BranchState struct {
	Value       Branch
	Probability float64
	Amplitude   complex128
}
