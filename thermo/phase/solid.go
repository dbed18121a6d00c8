package phase

// The solid slot phases borrow their parameters from a designated
// reference phase (slot 0 of the owning system). The pure-solid and
// clathrate fugacity corrections are evaluated by the external core; the
// phases here complete the factory wiring so the slots clone and refresh
// consistently.

// PhasePureComponentSolid occupies the solid slot.
type PhasePureComponentSolid struct {
	Phase
}

func NewPhasePureComponentSolid() (p *PhasePureComponentSolid) {
	p = &PhasePureComponentSolid{}
	p.SetType(Solid)
	return
}

func (p *PhasePureComponentSolid) ModelName() string { return "pure-solid" }

// FugacityCoefficients of the solid slot start from the reference phase
// coefficients; the sublimation-pressure correction is external.
func (p *PhasePureComponentSolid) FugacityCoefficients() []float64 {
	if p.refPhase != nil && p.refPhase.NumberOfComponents() == len(p.comps) {
		return p.refPhase.FugacityCoefficients()
	}
	return p.Phase.FugacityCoefficients()
}

func (p *PhasePureComponentSolid) Clone() PhaseInterface {
	cc := &PhasePureComponentSolid{}
	p.cloneInto(&cc.Phase)
	return cc
}

// Cavity structure of the two clathrate hydrate lattices, per mole of
// water: small and large cavity counts.
var hydrateCavities = map[string][2]float64{
	"structure1": {1.0 / 23.0, 3.0 / 23.0},
	"structure2": {2.0 / 17.0, 1.0 / 17.0},
}

// Components that can enter hydrate cavities.
var hydrateFormers = map[string]bool{
	"methane":  true,
	"ethane":   true,
	"propane":  true,
	"i-butane": true,
	"CO2":      true,
	"H2S":      true,
	"nitrogen": true,
}

// PhaseHydrate occupies the hydrate slot.
type PhaseHydrate struct {
	Phase
	structure string
}

func NewPhaseHydrate() (p *PhaseHydrate) {
	p = &PhaseHydrate{structure: "structure2"}
	p.SetType(Hydrate)
	return
}

func (p *PhaseHydrate) ModelName() string { return "hydrate" }

// SetStructure selects the clathrate lattice, "structure1" or
// "structure2".
func (p *PhaseHydrate) SetStructure(s string) {
	if _, ok := hydrateCavities[s]; !ok {
		panic("unknown hydrate structure " + s)
	}
	p.structure = s
}

func (p *PhaseHydrate) Structure() string { return p.structure }

// CavitiesPerWater returns the small and large cavity counts per mole of
// water for the selected structure.
func (p *PhaseHydrate) CavitiesPerWater() (small, large float64) {
	c := hydrateCavities[p.structure]
	return c[0], c[1]
}

// NumberOfFormers counts the hydrate-forming components in the phase.
func (p *PhaseHydrate) NumberOfFormers() (n int) {
	for _, c := range p.comps {
		if hydrateFormers[c.Name] {
			n++
		}
	}
	return
}

func (p *PhaseHydrate) FugacityCoefficients() []float64 {
	if p.refPhase != nil && p.refPhase.NumberOfComponents() == len(p.comps) {
		return p.refPhase.FugacityCoefficients()
	}
	return p.Phase.FugacityCoefficients()
}

func (p *PhaseHydrate) Clone() PhaseInterface {
	cc := &PhaseHydrate{structure: p.structure}
	p.cloneInto(&cc.Phase)
	return cc
}
