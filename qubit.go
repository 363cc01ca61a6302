package baryogen

import (
	"math"
	"math/cmplx"
)

type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

func NewQubit(alpha, beta complex128) *Qubit {
	return &Qubit{
		alpha: alpha,
		beta:  beta,
	}
}

func (q *Qubit) ApplyRY(theta float64) {
	// RY(θ) = [cos(θ/2)  -sin(θ/2)]
	//         [sin(θ/2)   cos(θ/2)]
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	newAlpha := cos*q.alpha - sin*q.beta
	newBeta := sin*q.alpha + cos*q.beta
	q.alpha = newAlpha
	q.beta = newBeta
}

func (q *Qubit) ApplyX() {
	// X = [0 1]
	//     [1 0]
	q.alpha, q.beta = q.beta, q.alpha
}

// ProbabilityOne returns |β|², the probability of measuring |1⟩.
func (q *Qubit) ProbabilityOne() float64 {
	p := cmplx.Abs(q.beta)
	return p * p
}
