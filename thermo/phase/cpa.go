package phase

import (
	"math"
	"strings"
)

// Association schemes for the self-associating components the CPA phases
// recognize. The association term itself is evaluated by the external
// numerical core; the phase keeps the scheme bookkeeping the factory layer
// wires up.
var associationSchemes = map[string]string{
	"water":    "4C",
	"methanol": "2B",
	"ethanol":  "2B",
	"MEG":      "2B",
	"TEG":      "4C",
	"H2S":      "3B",
}

// PhaseSrkCPA is the CPA phase: the SRK cubic core with association
// bookkeeping and the CPA-Statoil attractive term.
type PhaseSrkCPA struct {
	PhaseSrkEos
}

func NewPhaseSrkCPA() (p *PhaseSrkCPA) {
	p = &PhaseSrkCPA{
		PhaseSrkEos: *NewPhaseSrkEos(),
	}
	p.modelName = "CPA-SRK-EOS"
	p.SetAttractiveTerm(AtractiveCpaStatoil)
	return
}

// AssociationScheme returns the association scheme label for a component
// in the phase, or the empty string for inert components.
func (p *PhaseSrkCPA) AssociationScheme(name string) string {
	if !p.HasComponent(name) {
		return ""
	}
	return associationSchemes[name]
}

// NumberOfAssociationSites counts the association sites in the phase.
func (p *PhaseSrkCPA) NumberOfAssociationSites() (n int) {
	for _, c := range p.comps {
		switch associationSchemes[c.Name] {
		case "2B":
			n += 2
		case "3B":
			n += 3
		case "4C":
			n += 4
		}
	}
	return
}

func (p *PhaseSrkCPA) Clone() PhaseInterface {
	cc := &PhaseSrkCPA{}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}

// PhaseElectrolyteCPA extends the CPA phase with ion bookkeeping and the
// mixed-solvent correction used by the electrolyte systems.
type PhaseElectrolyteCPA struct {
	PhaseSrkCPA
	solventEnhancementExp float64
}

func NewPhaseElectrolyteCPA() (p *PhaseElectrolyteCPA) {
	p = &PhaseElectrolyteCPA{
		PhaseSrkCPA:           *NewPhaseSrkCPA(),
		solventEnhancementExp: 1.0,
	}
	p.modelName = "Electrolyte-CPA-EOS"
	return
}

// SetSolventEnhancementExponent sets the exponent the mixed-solvent
// correction applies to the water fraction of the solvent.
func (p *PhaseElectrolyteCPA) SetSolventEnhancementExponent(e float64) {
	p.solventEnhancementExp = e
}

func (p *PhaseElectrolyteCPA) SolventEnhancementExponent() float64 {
	return p.solventEnhancementExp
}

// IonicStrength is 1/2 sum x_i z_i^2 over the ionic components.
func (p *PhaseElectrolyteCPA) IonicStrength() (ionStr float64) {
	for _, c := range p.comps {
		if c.IsIon() {
			ionStr += 0.5 * c.X * c.Charge * c.Charge
		}
	}
	return
}

// WaterFractionOfSolvent is the water mole fraction among the non-ionic
// components.
func (p *PhaseElectrolyteCPA) WaterFractionOfSolvent() (w float64) {
	var solvent float64
	for _, c := range p.comps {
		if c.IsIon() {
			continue
		}
		solvent += c.X
		if strings.EqualFold(c.Name, "water") {
			w = c.X
		}
	}
	if solvent > 0 {
		w /= solvent
	}
	return
}

// EffectiveIonicStrength scales the ionic strength with the mixed-solvent
// enhancement exponent: co-solvents (methanol, MEG) lower the dielectric
// screening, raising the effective ionic strength.
func (p *PhaseElectrolyteCPA) EffectiveIonicStrength() (ionStr float64) {
	ionStr = p.IonicStrength()
	w := p.WaterFractionOfSolvent()
	if w > 0 && w < 1 {
		ionStr *= math.Pow(w, -p.solventEnhancementExp)
	}
	return
}

func (p *PhaseElectrolyteCPA) Clone() PhaseInterface {
	cc := &PhaseElectrolyteCPA{solventEnhancementExp: p.solventEnhancementExp}
	p.cloneEosInto(&cc.PhaseEos)
	return cc
}
