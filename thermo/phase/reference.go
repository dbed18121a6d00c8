package phase

import (
	"fmt"
	"strings"

	"github.com/equinor/gothermo/thermo/component"
)

// The reference-equation phases keep the structure of the original model
// hierarchy: they extend the SRK cubic phase, and the multi-parameter
// Helmholtz property routines are delegated to the external numerical
// core. Volumetric calls fall through to the cubic core.

// PhaseGERG2004 is the phase slot type of the GERG-2004 wide-range natural
// gas model.
type PhaseGERG2004 struct {
	PhaseSrkEos
}

func NewPhaseGERG2004() (p *PhaseGERG2004) {
	p = &PhaseGERG2004{
		PhaseSrkEos: *NewPhaseSrkEos(),
	}
	p.modelName = "GERG-2004-EOS"
	p.SetAttractiveTerm(AtractiveGerg)
	return
}

func (p *PhaseGERG2004) Clone() PhaseInterface {
	cc := &PhaseGERG2004{}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}

// PhaseSpanWagner is the phase slot type of the Span-Wagner CO2 reference
// equation. The reference equation is single-component, so only CO2 may be
// added.
type PhaseSpanWagner struct {
	PhaseSrkEos
}

func NewPhaseSpanWagner() (p *PhaseSpanWagner) {
	p = &PhaseSpanWagner{
		PhaseSrkEos: *NewPhaseSrkEos(),
	}
	p.modelName = "SpanWagner-EOS"
	return
}

func (p *PhaseSpanWagner) AddComponent(d component.Data, moles float64) {
	if !strings.EqualFold(d.Name, "CO2") {
		panic(fmt.Errorf("SpanWagner phase is CO2 only, got %s", d.Name))
	}
	p.PhaseSrkEos.AddComponent(d, moles)
}

func (p *PhaseSpanWagner) Clone() PhaseInterface {
	cc := &PhaseSpanWagner{}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}
