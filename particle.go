package baryogen

import "fmt"

/*
ParticleState holds the particle content of a single trial as five named
presence flags. The bitstring ordering exists only as a display and histogram
key (see Bitstring) and is never parsed back into flags.
*/
type ParticleState struct {
	XBoson     bool
	Quark      bool
	Antiquark  bool
	Lepton     bool
	Antilepton bool
}

// NewInitialState returns the single achievable pre-decay configuration:
// one X boson, no decay products. The boson qubit is prepared by flipping
// |0⟩, so its presence is definite, never a superposition.
func NewInitialState() ParticleState {
	xBoson := NewQubit(1, 0)
	xBoson.ApplyX()
	return ParticleState{XBoson: xBoson.ProbabilityOne() == 1}
}

// NewParticleState builds an arbitrary configuration. Useful for rigging
// states in tests; normal operation only ever sees NewInitialState and the
// outcomes of a decay branch.
func NewParticleState(xBoson, quark, antiquark, lepton, antilepton bool) ParticleState {
	return ParticleState{
		XBoson:     xBoson,
		Quark:      quark,
		Antiquark:  antiquark,
		Lepton:     lepton,
		Antilepton: antilepton,
	}
}

/*
Validate checks the conservation laws every produced outcome must satisfy:
quark and lepton are created together, antiquark and antilepton are created
together, matter and antimatter branches are mutually exclusive, and the X
boson is present exactly when no decay has occurred.
*/
func (ps ParticleState) Validate() error {
	if ps.Quark && ps.Antiquark {
		return fmt.Errorf("conservation violated: quark and antiquark coexist in %s", ps.Bitstring())
	}
	if ps.Quark != ps.Lepton {
		return fmt.Errorf("conservation violated: quark without lepton pair in %s", ps.Bitstring())
	}
	if ps.Antiquark != ps.Antilepton {
		return fmt.Errorf("conservation violated: antiquark without antilepton pair in %s", ps.Bitstring())
	}

	decayed := ps.Quark || ps.Antiquark
	if ps.XBoson == decayed {
		return fmt.Errorf("X boson flag inconsistent with decay products in %s", ps.Bitstring())
	}
	return nil
}

// Bitstring renders the state as |antilepton lepton antiquark quark X>, the
// ordering a circuit backend would report. Output only; never indexed into.
func (ps ParticleState) Bitstring() string {
	bits := [5]byte{'0', '0', '0', '0', '0'}
	if ps.Antilepton {
		bits[0] = '1'
	}
	if ps.Lepton {
		bits[1] = '1'
	}
	if ps.Antiquark {
		bits[2] = '1'
	}
	if ps.Quark {
		bits[3] = '1'
	}
	if ps.XBoson {
		bits[4] = '1'
	}
	return string(bits[:])
}
