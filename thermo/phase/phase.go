// Package phase holds the phase models a fluid system delegates to. The
// system layer constructs one concrete phase per slot, pushes temperature,
// pressure and configuration flags into it, and reads properties back
// after Init.
package phase

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/equinor/gothermo/thermo"
	"github.com/equinor/gothermo/thermo/component"
)

var log = logrus.WithField("package", "phase")

type PhaseType uint

const (
	Liquid PhaseType = iota
	Gas
	Aqueous
	Solid
	Hydrate
)

var (
	PhaseTypeNames = map[string]PhaseType{
		"liquid":  Liquid,
		"gas":     Gas,
		"aqueous": Aqueous,
		"solid":   Solid,
		"hydrate": Hydrate,
	}
	phaseTypePrintNames = []string{"Liquid", "Gas", "Aqueous", "Solid", "Hydrate"}
)

func (pt PhaseType) String() (txt string) {
	txt = phaseTypePrintNames[pt]
	return
}

// NewPhaseType maps a label to a phase type.
func NewPhaseType(label string) (pt PhaseType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if pt, ok = PhaseTypeNames[label]; !ok {
		err = fmt.Errorf("unable to use phase type named %s", label)
		panic(err)
	}
	return
}

// PhaseInterface is the contract the system factory layer invokes on its
// phase slots.
type PhaseInterface interface {
	ModelName() string
	AddComponent(d component.Data, moles float64)
	Component(i int) *component.Component
	ComponentByName(name string) *component.Component
	HasComponent(name string) bool
	Components() []*component.Component
	NumberOfComponents() int

	SetTemperature(T float64)
	SetPressure(P float64)
	Temperature() float64
	Pressure() float64
	SetType(pt PhaseType)
	Type() PhaseType

	SetAttractiveTerm(at AttractiveTerm)
	AttractiveTermNumber() AttractiveTerm
	UseVolumeCorrection(on bool)
	VolumeCorrection() bool
	SetRefPhase(ref PhaseInterface)
	RefPhase() PhaseInterface
	SetMolality(m float64)
	Molality() float64

	// Init recomputes the phase state after temperature, pressure or
	// composition changed. It never mutates the composition.
	Init() error

	Z() float64
	MolarVolume() float64
	Density() float64
	MolarMass() float64
	FugacityCoefficients() []float64

	Clone() PhaseInterface
}

// Phase is the base phase implementation: component bookkeeping, state
// staging and the flag set the factory layer wires. Property calls on the
// base phase report ideal behavior; EOS phases embed it and override.
type Phase struct {
	comps     []*component.Component
	temp      float64
	pres      float64 // bara
	phaseType PhaseType

	attractiveTerm AttractiveTerm
	volCorrection  bool
	refPhase       PhaseInterface
	molality       float64 // mol salt per kg water, read by alpha code 20
}

func (p *Phase) ModelName() string { return "ideal" }

// AddComponent appends a component or, when the name already exists, adds
// to its moles.
func (p *Phase) AddComponent(d component.Data, moles float64) {
	if c := p.ComponentByName(d.Name); c != nil {
		c.AddMoles(moles)
		p.normalize()
		return
	}
	p.comps = append(p.comps, component.NewComponent(d, len(p.comps), moles))
	p.normalize()
}

func (p *Phase) normalize() {
	var total float64
	for _, c := range p.comps {
		total += c.MolesInPhase
	}
	if total <= 0 {
		return
	}
	for _, c := range p.comps {
		c.X = c.MolesInPhase / total
	}
}

func (p *Phase) Component(i int) *component.Component { return p.comps[i] }

func (p *Phase) ComponentByName(name string) *component.Component {
	for _, c := range p.comps {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

func (p *Phase) HasComponent(name string) bool { return p.ComponentByName(name) != nil }

func (p *Phase) Components() []*component.Component { return p.comps }

func (p *Phase) NumberOfComponents() int { return len(p.comps) }

// NumberOfMolesInPhase totals the phase composition.
func (p *Phase) NumberOfMolesInPhase() (n float64) {
	for _, c := range p.comps {
		n += c.MolesInPhase
	}
	return
}

func (p *Phase) SetTemperature(T float64) { p.temp = T }
func (p *Phase) SetPressure(P float64)    { p.pres = P }
func (p *Phase) Temperature() float64     { return p.temp }
func (p *Phase) Pressure() float64        { return p.pres }

func (p *Phase) SetType(pt PhaseType) { p.phaseType = pt }
func (p *Phase) Type() PhaseType      { return p.phaseType }

func (p *Phase) SetAttractiveTerm(at AttractiveTerm)  { p.attractiveTerm = at }
func (p *Phase) AttractiveTermNumber() AttractiveTerm { return p.attractiveTerm }

func (p *Phase) UseVolumeCorrection(on bool) { p.volCorrection = on }
func (p *Phase) VolumeCorrection() bool      { return p.volCorrection }

func (p *Phase) SetRefPhase(ref PhaseInterface) { p.refPhase = ref }
func (p *Phase) RefPhase() PhaseInterface       { return p.refPhase }

func (p *Phase) SetMolality(m float64) { p.molality = m }
func (p *Phase) Molality() float64     { return p.molality }

func (p *Phase) Init() error { return nil }

// Z of the base phase is ideal.
func (p *Phase) Z() float64 { return 1.0 }

func (p *Phase) MolarVolume() float64 {
	return thermo.R * p.temp / (p.pres * thermo.BarToPa)
}

func (p *Phase) Density() (rho float64) {
	v := p.MolarVolume()
	if v <= 0 {
		log.Warnf("non-positive molar volume for %s phase", p.phaseType)
		return 0
	}
	rho = p.MolarMass() / v
	return
}

// MolarMass is the mole-fraction averaged molar mass, kg/mol.
func (p *Phase) MolarMass() (m float64) {
	for _, c := range p.comps {
		m += c.X * c.Data.MolarMass
	}
	return
}

func (p *Phase) FugacityCoefficients() []float64 {
	f := make([]float64, len(p.comps))
	for i := range f {
		f[i] = 1.0
	}
	return f
}

// cloneInto deep-copies the base state. The reference phase pointer is
// carried over as-is; the owning system re-wires it after cloning.
func (p *Phase) cloneInto(dst *Phase) {
	*dst = *p
	dst.comps = make([]*component.Component, len(p.comps))
	for i, c := range p.comps {
		dst.comps[i] = c.Clone()
	}
}

func (p *Phase) Clone() PhaseInterface {
	cc := &Phase{}
	p.cloneInto(cc)
	return cc
}
