package phase

import "math"

// EOS constants per cubic family.
const (
	srkOmegaA = 0.42747
	srkOmegaB = 0.08664
	prOmegaA  = 0.45724
	prOmegaB  = 0.07780
	tstOmegaA = 0.427481
	tstOmegaB = 0.086641

	// Peneloux shift constants, c = k0 (k1 - ZRA) R Tc / Pc.
	srkPenelouxK0 = 0.40768
	srkPenelouxK1 = 0.29441
	prPenelouxK0  = 0.50033
	prPenelouxK1  = 0.25969
)

// PhaseSrkEos is the Soave-Redlich-Kwong phase.
type PhaseSrkEos struct {
	PhaseEos
}

func NewPhaseSrkEos() (p *PhaseSrkEos) {
	p = &PhaseSrkEos{
		PhaseEos: *newPhaseEos("SRK-EOS", srkOmegaA, srkOmegaB, 1, 0,
			srkPenelouxK0, srkPenelouxK1),
	}
	p.SetAttractiveTerm(AtractiveSrk)
	return
}

func (p *PhaseSrkEos) Clone() PhaseInterface {
	cc := &PhaseSrkEos{}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}

// PhaseRkEos is the original Redlich-Kwong phase: SRK omegas with the
// 1/sqrt(Tr) attractive term.
type PhaseRkEos struct {
	PhaseEos
}

func NewPhaseRkEos() (p *PhaseRkEos) {
	p = &PhaseRkEos{
		PhaseEos: *newPhaseEos("RK-EOS", srkOmegaA, srkOmegaB, 1, 0,
			srkPenelouxK0, srkPenelouxK1),
	}
	p.SetAttractiveTerm(AtractiveRk)
	return
}

func (p *PhaseRkEos) Clone() PhaseInterface {
	cc := &PhaseRkEos{}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}

// PhasePrEos is the Peng-Robinson phase.
type PhasePrEos struct {
	PhaseEos
}

func NewPhasePrEos() (p *PhasePrEos) {
	p = &PhasePrEos{
		PhaseEos: *newPhaseEos("PR-EOS", prOmegaA, prOmegaB,
			1+math.Sqrt2, 1-math.Sqrt2, prPenelouxK0, prPenelouxK1),
	}
	p.SetAttractiveTerm(AtractivePr)
	return
}

func (p *PhasePrEos) Clone() PhaseInterface {
	cc := &PhasePrEos{}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}

// PhaseTSTEos is the Twu-Sim-Tassone phase with its wider root structure
// (delta 2.5 / -1.5).
type PhaseTSTEos struct {
	PhaseEos
}

func NewPhaseTSTEos() (p *PhaseTSTEos) {
	p = &PhaseTSTEos{
		PhaseEos: *newPhaseEos("TST-EOS", tstOmegaA, tstOmegaB, 2.5, -1.5,
			srkPenelouxK0, srkPenelouxK1),
	}
	p.SetAttractiveTerm(AtractiveSrk)
	return
}

func (p *PhaseTSTEos) Clone() PhaseInterface {
	cc := &PhaseTSTEos{}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}
