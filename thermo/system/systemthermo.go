// Package system holds the fluid system family: each system type is a
// constructor that selects the concrete phase model per phase slot, sets
// the attractive-term number and the volume-correction and solid/hydrate
// flags, and wires the cross references (reference phase, salinity,
// solvent-enhancement exponent). The physics lives in the phase and
// component packages; this layer is configuration.
package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/equinor/gothermo/thermo"
	"github.com/equinor/gothermo/thermo/component"
	"github.com/equinor/gothermo/thermo/mixingrule"
	"github.com/equinor/gothermo/thermo/phase"
)

var log = logrus.WithField("package", "system")

// SystemInterface is the contract of a fluid system.
type SystemInterface interface {
	ModelName() string
	FluidName() string
	SetFluidName(name string)

	AddComponent(name string, moles float64) error
	AddSalt(name string, moles float64) error
	Salinity() float64
	TotalNumberOfMoles() float64
	MolarComposition() []float64

	SetTemperature(T float64)
	SetPressure(P float64)
	Temperature() float64
	Pressure() float64

	Init(level int) error

	Phase(i int) phase.PhaseInterface
	PhaseByType(pt phase.PhaseType) phase.PhaseInterface
	NumberOfPhases() int
	MaxNumberOfPhases() int
	Beta(i int) float64

	SetMixingRule(number int)
	SetBinaryInteractionParameter(name1, name2 string, value float64) error
	SetAttractiveTerm(at phase.AttractiveTerm)
	AttractiveTermNumber() phase.AttractiveTerm
	UseVolumeCorrection(on bool)
	VolumeCorrection() bool
	SetSolidPhaseCheck(on bool)
	SolidPhaseCheck() bool
	SetHydrateCheck(on bool)
	HydrateCheck() bool

	MolarVolume() float64
	Density() float64

	Clone() SystemInterface
}

// SystemThermo is the shared implementation every system type embeds. A
// system starts with a gas and a liquid slot; slot 3 (solid) and slot 4
// (hydrate) are appended by the phase-check flags.
type SystemThermo struct {
	modelName string
	fluidName string

	phaseArray [thermo.MaxNumberOfPhases]phase.PhaseInterface
	numPhases  int
	maxPhases  int
	beta       [thermo.MaxNumberOfPhases]float64

	temp float64 // K
	pres float64 // bara

	attractiveTerm phase.AttractiveTerm
	mixingRule     int
	volCorrection  bool
	solidCheck     bool
	hydrateCheck   bool
	multiPhase     bool

	saltMoles       float64 // accumulated moles of dissolved salt
	stagedSaltMoles float64 // salt added before water was present

	solventEnhancementExp float64
}

// newSystemThermo validates the state point and initializes the slot
// bookkeeping: all phase fractions start at 1.0, as in the original.
func newSystemThermo(modelName string, T, P float64) (s SystemThermo) {
	if T < 0 || P < 0 {
		panic(fmt.Errorf("negative input temperature or pressure (T=%g K, P=%g bara)", T, P))
	}
	s = SystemThermo{
		modelName:             modelName,
		fluidName:             "DefaultName",
		temp:                  T,
		pres:                  P,
		numPhases:             2,
		maxPhases:             2,
		mixingRule:            2,
		solventEnhancementExp: 1.0,
	}
	for i := range s.beta {
		s.beta[i] = 1.0
	}
	s.checkSaneStatePoint()
	return
}

// setPhases wires the gas and liquid slots and pushes the state point and
// the attractive term into them.
func (s *SystemThermo) setPhases(gas, liquid phase.PhaseInterface) {
	gas.SetType(phase.Gas)
	if liquid.Type() != phase.Aqueous {
		liquid.SetType(phase.Liquid)
	}
	s.phaseArray[0] = gas
	s.phaseArray[1] = liquid
	for _, p := range s.activePhases() {
		p.SetTemperature(s.temp)
		p.SetPressure(s.pres)
		p.SetAttractiveTerm(s.attractiveTerm)
	}
}

func (s *SystemThermo) activePhases() (phases []phase.PhaseInterface) {
	for _, p := range s.phaseArray {
		if p != nil {
			phases = append(phases, p)
		}
	}
	return
}

func (s *SystemThermo) ModelName() string        { return s.modelName }
func (s *SystemThermo) FluidName() string        { return s.fluidName }
func (s *SystemThermo) SetFluidName(name string) { s.fluidName = name }

// AddComponent adds moles of a database component to every phase slot.
// Repeated adds accumulate.
func (s *SystemThermo) AddComponent(name string, moles float64) (err error) {
	var d component.Data
	if d, err = component.GetComponent(name); err != nil {
		return
	}
	if moles < 0 {
		return fmt.Errorf("negative moles for component %s", name)
	}
	for _, p := range s.activePhases() {
		p.AddComponent(d, moles)
	}
	return
}

// Salt composition table: moles of each ion per mole of salt.
var saltIons = map[string]map[string]float64{
	"NaCl":  {"Na+": 1, "Cl-": 1},
	"KCl":   {"K+": 1, "Cl-": 1},
	"CaCl2": {"Ca++": 1, "Cl-": 2},
}

// AddSalt dissolves a salt into the fluid: the ions are added as
// components and the salinity accumulator is updated. Salt added before
// any water exists is staged and folded in once water arrives.
func (s *SystemThermo) AddSalt(name string, moles float64) (err error) {
	ions, ok := saltIons[name]
	if !ok {
		return fmt.Errorf("salt %q not known, available: NaCl, KCl, CaCl2", name)
	}
	for ion, stoich := range ions {
		if err = s.AddComponent(ion, stoich*moles); err != nil {
			return
		}
	}
	if s.waterMoles() > 0 {
		s.saltMoles += moles + s.stagedSaltMoles
		s.stagedSaltMoles = 0
	} else {
		s.stagedSaltMoles += moles
	}
	s.pushMolality()
	return
}

func (s *SystemThermo) waterMoles() float64 {
	if p := s.phaseArray[0]; p != nil {
		if w := p.ComponentByName("water"); w != nil {
			return w.NumberOfMoles
		}
	}
	return 0
}

// Salinity is the accumulated salt molality, mol per kg water.
func (s *SystemThermo) Salinity() (molality float64) {
	wm := s.waterMoles()
	if wm <= 0 {
		return 0
	}
	if s.stagedSaltMoles > 0 {
		s.saltMoles += s.stagedSaltMoles
		s.stagedSaltMoles = 0
	}
	molality = s.saltMoles / (wm * 0.018015)
	return
}

func (s *SystemThermo) pushMolality() {
	m := s.Salinity()
	for _, p := range s.activePhases() {
		p.SetMolality(m)
	}
}

func (s *SystemThermo) TotalNumberOfMoles() (n float64) {
	if p := s.phaseArray[0]; p != nil {
		for _, c := range p.Components() {
			n += c.NumberOfMoles
		}
	}
	return
}

// MolarComposition returns the overall mole fractions in slot order.
func (s *SystemThermo) MolarComposition() (x []float64) {
	p := s.phaseArray[0]
	if p == nil {
		return
	}
	x = make([]float64, p.NumberOfComponents())
	for i := range x {
		x[i] = p.Component(i).NumberOfMoles
	}
	if sum := floats.Sum(x); sum > 0 {
		floats.Scale(1/sum, x)
	}
	return
}

func (s *SystemThermo) SetTemperature(T float64) {
	if T < 0 {
		panic(fmt.Errorf("negative temperature %g K", T))
	}
	s.temp = T
	for _, p := range s.activePhases() {
		p.SetTemperature(T)
	}
}

func (s *SystemThermo) SetPressure(P float64) {
	if P < 0 {
		panic(fmt.Errorf("negative pressure %g bara", P))
	}
	s.pres = P
	for _, p := range s.activePhases() {
		p.SetPressure(P)
	}
}

func (s *SystemThermo) Temperature() float64 { return s.temp }
func (s *SystemThermo) Pressure() float64    { return s.pres }

// Init refreshes the system state. Level 0 restages composition-derived
// quantities only; level 1 and above also recomputes the phase EOS state.
func (s *SystemThermo) Init(level int) (err error) {
	s.pushMolality()
	if level < 1 {
		return
	}
	for i, p := range s.activePhases() {
		if e := p.Init(); e != nil {
			err = fmt.Errorf("init of phase %d: %w", i, e)
			return
		}
	}
	return
}

func (s *SystemThermo) Phase(i int) phase.PhaseInterface { return s.phaseArray[i] }

func (s *SystemThermo) PhaseByType(pt phase.PhaseType) phase.PhaseInterface {
	for _, p := range s.activePhases() {
		if p.Type() == pt {
			return p
		}
	}
	return nil
}

func (s *SystemThermo) NumberOfPhases() int    { return s.numPhases }
func (s *SystemThermo) MaxNumberOfPhases() int { return s.maxPhases }
func (s *SystemThermo) Beta(i int) float64     { return s.beta[i] }

// SetMixingRule fans the mixing rule number out to the cubic phases.
func (s *SystemThermo) SetMixingRule(number int) {
	s.mixingRule = number
	type mixable interface{ SetMixingRule(int) }
	for _, p := range s.activePhases() {
		if m, ok := p.(mixable); ok {
			m.SetMixingRule(number)
		}
	}
}

func (s *SystemThermo) MixingRule() int { return s.mixingRule }

// SetBinaryInteractionParameter sets kij for a named component pair in
// every slot that carries a mixing rule.
func (s *SystemThermo) SetBinaryInteractionParameter(name1, name2 string, value float64) error {
	type ruled interface {
		MixingRule() mixingrule.EosMixingRule
	}
	var set bool
	for _, p := range s.activePhases() {
		r, ok := p.(ruled)
		if !ok {
			continue
		}
		i := componentIndex(p, name1)
		j := componentIndex(p, name2)
		if i < 0 || j < 0 {
			return fmt.Errorf("pair %s/%s not in fluid", name1, name2)
		}
		r.MixingRule().SetBinary(i, j, value)
		set = true
	}
	if !set {
		return fmt.Errorf("no phase of %s carries interaction parameters", s.modelName)
	}
	return nil
}

func componentIndex(p phase.PhaseInterface, name string) int {
	for i, c := range p.Components() {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

func (s *SystemThermo) SetAttractiveTerm(at phase.AttractiveTerm) {
	s.attractiveTerm = at
	for _, p := range s.activePhases() {
		p.SetAttractiveTerm(at)
	}
}

func (s *SystemThermo) AttractiveTermNumber() phase.AttractiveTerm {
	return s.attractiveTerm
}

func (s *SystemThermo) UseVolumeCorrection(on bool) {
	s.volCorrection = on
	for _, p := range s.activePhases() {
		p.UseVolumeCorrection(on)
	}
}

func (s *SystemThermo) VolumeCorrection() bool { return s.volCorrection }

// SetSolidPhaseCheck appends the pure-solid slot (index 3), copying the
// composition from the reference phase (slot 0) and wiring the reference
// phase into it. Idempotent.
func (s *SystemThermo) SetSolidPhaseCheck(on bool) {
	if !on || s.solidCheck {
		s.solidCheck = on
		return
	}
	s.solidCheck = true
	s.multiPhase = true
	s.addSolidSlot()
}

func (s *SystemThermo) addSolidSlot() {
	if s.phaseArray[3] != nil {
		return
	}
	solid := phase.NewPhasePureComponentSolid()
	s.fillSlotFromRef(solid)
	s.phaseArray[3] = solid
	if s.maxPhases < 4 {
		s.maxPhases = 4
	}
}

// SetHydrateCheck appends the hydrate slot (index 4). The solid slot is
// created first when missing, as in the original. Idempotent.
func (s *SystemThermo) SetHydrateCheck(on bool) {
	if !on || s.hydrateCheck {
		s.hydrateCheck = on
		return
	}
	s.hydrateCheck = true
	s.multiPhase = true
	s.addSolidSlot()
	if s.phaseArray[4] != nil {
		return
	}
	hydrate := phase.NewPhaseHydrate()
	s.fillSlotFromRef(hydrate)
	s.phaseArray[4] = hydrate
	if s.maxPhases < 5 {
		s.maxPhases = 5
	}
}

func (s *SystemThermo) fillSlotFromRef(p phase.PhaseInterface) {
	ref := s.phaseArray[0]
	p.SetTemperature(s.temp)
	p.SetPressure(s.pres)
	if ref == nil {
		return
	}
	for _, c := range ref.Components() {
		p.AddComponent(c.Data, c.NumberOfMoles)
	}
	p.SetRefPhase(ref)
}

func (s *SystemThermo) SolidPhaseCheck() bool { return s.solidCheck }
func (s *SystemThermo) HydrateCheck() bool    { return s.hydrateCheck }

// MolarVolume is the phase-fraction weighted molar volume over the active
// gas/liquid slots, m3/mol.
func (s *SystemThermo) MolarVolume() (v float64) {
	var betaSum float64
	for i := 0; i < s.numPhases; i++ {
		if p := s.phaseArray[i]; p != nil {
			v += s.beta[i] * p.MolarVolume()
			betaSum += s.beta[i]
		}
	}
	if betaSum > 0 {
		v /= betaSum
	}
	return
}

// Density is the bulk density, kg/m3, honoring the volume-correction flag
// through the phase molar volumes.
func (s *SystemThermo) Density() (rho float64) {
	var mass, vol float64
	for i := 0; i < s.numPhases; i++ {
		if p := s.phaseArray[i]; p != nil {
			mass += s.beta[i] * p.MolarMass()
			vol += s.beta[i] * p.MolarVolume()
		}
	}
	if vol <= 0 {
		log.Warnf("%s: non-positive fluid volume", s.modelName)
		return 0
	}
	rho = mass / vol
	return
}

// cloneThermo deep-copies the base state: every slot is cloned and the
// solid/hydrate reference phases are re-pointed at the cloned slot 0.
func (s *SystemThermo) cloneThermo() (cc SystemThermo) {
	cc = *s
	for i, p := range s.phaseArray {
		if p != nil {
			cc.phaseArray[i] = p.Clone()
		}
	}
	for i := 3; i < thermo.MaxNumberOfPhases; i++ {
		if cc.phaseArray[i] != nil && cc.phaseArray[i].RefPhase() != nil {
			cc.phaseArray[i].SetRefPhase(cc.phaseArray[0])
		}
	}
	return
}

func (s *SystemThermo) Clone() SystemInterface {
	cc := s.cloneThermo()
	return &cc
}

// checkSaneStatePoint warns about state points far outside the working
// envelope of the cubic families.
func (s *SystemThermo) checkSaneStatePoint() {
	if s.temp > 0 && (s.temp < 50 || s.temp > 2000) {
		log.Warnf("%s: temperature %g K outside the validated range", s.modelName, s.temp)
	}
	if !math.IsNaN(s.pres) && s.pres > 2000 {
		log.Warnf("%s: pressure %g bara outside the validated range", s.modelName, s.pres)
	}
}
