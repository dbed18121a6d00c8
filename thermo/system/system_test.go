package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equinor/gothermo/thermo/phase"
)

func TestSystemCatalog(t *testing.T) {
	const (
		T = 298.15
		P = 10.0
	)
	cases := []struct {
		construct func() SystemInterface
		modelName string
		term      phase.AttractiveTerm
		volCorr   bool
	}{
		{func() SystemInterface { return NewSystemSrkEos(T, P) }, "SRK-EOS", phase.AtractiveSrk, false},
		{func() SystemInterface { return NewSystemSrkPenelouxEos(T, P) }, "SRK-Peneloux-EOS", phase.AtractiveSrk, true},
		{func() SystemInterface { return NewSystemSrkMathiasCopeman(T, P) }, "SRK-MC-EOS", phase.AtractiveMathiasCopeman, false},
		{func() SystemInterface { return NewSystemSrkTwuCoonEos(T, P) }, "SRK-TwuCoon-EOS", phase.AtractiveTwuCoon, false},
		{func() SystemInterface { return NewSystemSrkTwuCoonParamEos(T, P) }, "SRK-TwuCoonParam-EOS", phase.AtractiveTwuCoonParam, false},
		{func() SystemInterface { return NewSystemSrkTwuCoonStatoilEos(T, P) }, "SRK-TwuCoonStatoil-EOS", phase.AtractiveTwuCoonStatoil, false},
		{func() SystemInterface { return NewSystemSoreideWhitson(T, P) }, "Soreide-Whitson-EOS", phase.AtractiveSoreideWhitson, false},
		{func() SystemInterface { return NewSystemRkEos(T, P) }, "RK-EOS", phase.AtractiveRk, false},
		{func() SystemInterface { return NewSystemPrEos(T, P) }, "PR-EOS", phase.AtractivePr, false},
		{func() SystemInterface { return NewSystemPrEos1978(T, P) }, "PR78-EOS", phase.AtractivePr1978, false},
		{func() SystemInterface { return NewSystemPrMathiasCopeman(T, P) }, "PR-MC-EOS", phase.AtractiveMathiasCopemanPr, false},
		{func() SystemInterface { return NewSystemPrPenelouxEos(T, P) }, "PR-Peneloux-EOS", phase.AtractivePr, true},
		{func() SystemInterface { return NewSystemTSTEos(T, P) }, "TST-EOS", phase.AtractiveSrk, false},
		{func() SystemInterface { return NewSystemGERG2004Eos(T, P) }, "GERG-2004-EOS", phase.AtractiveGerg, false},
		{func() SystemInterface { return NewSystemSpanWagnerEos(T, P) }, "SpanWagner-EOS", phase.AtractiveSrk, false},
		{func() SystemInterface { return NewSystemSrkCPA(T, P) }, "CPA-SRK-EOS", phase.AtractiveCpaStatoil, false},
		{func() SystemInterface { return NewSystemElectrolyteCPA(T, P) }, "Electrolyte-CPA-EOS", phase.AtractiveCpaStatoil, false},
		{func() SystemInterface { return NewSystemNRTL(T, P) }, "NRTL-GE-model", phase.AtractiveSrk, false},
		{func() SystemInterface { return NewSystemWilson(T, P) }, "Wilson-GE-model", phase.AtractiveSrk, false},
		{func() SystemInterface { return NewSystemUNIFAC(T, P) }, "UNIFAC-GE-model", phase.AtractiveSrk, false},
		{func() SystemInterface { return NewSystemPitzer(T, P) }, "Pitzer-GE-model", phase.AtractiveSrk, false},
	}
	for _, tc := range cases {
		s := tc.construct()
		assert.Equal(t, tc.modelName, s.ModelName())
		assert.Equal(t, tc.term, s.AttractiveTermNumber(), tc.modelName)
		assert.Equal(t, tc.volCorr, s.VolumeCorrection(), tc.modelName)
		assert.Equal(t, 2, s.NumberOfPhases(), tc.modelName)
		// Slot 0 is always the gas slot; the term is pushed into it.
		assert.Equal(t, phase.Gas, s.Phase(0).Type(), tc.modelName)
		assert.Equal(t, tc.term, s.Phase(0).AttractiveTermNumber(), tc.modelName)
		assert.True(t, near(s.Temperature(), T))
		assert.True(t, near(s.Pressure(), P))
		assert.True(t, near(s.Beta(0), 1.0))
	}
}

func TestAqueousSlots(t *testing.T) {
	// The electrolyte and salinity systems type their liquid slot aqueous.
	assert.Equal(t, phase.Aqueous, NewSystemElectrolyteCPA(298.15, 10).Phase(1).Type())
	assert.Equal(t, phase.Aqueous, NewSystemSoreideWhitson(298.15, 10).Phase(1).Type())
	assert.Equal(t, phase.Aqueous, NewSystemPitzer(298.15, 10).Phase(1).Type())
	assert.Equal(t, phase.Liquid, NewSystemSrkEos(298.15, 10).Phase(1).Type())
}

func TestRegistry(t *testing.T) {
	{ // Labels are matched without regard to case and punctuation
		assert.Equal(t, "SRK-Peneloux-EOS", NewSystem("SRK-Peneloux", 298.15, 10).ModelName())
		assert.Equal(t, "SRK-Peneloux-EOS", NewSystem("srk peneloux", 298.15, 10).ModelName())
		assert.Equal(t, "PR-EOS", NewSystem("PR-EOS", 298.15, 10).ModelName())
		assert.Equal(t, "GERG-2004-EOS", NewSystem("GERG2004", 298.15, 10).ModelName())
	}
	{ // Every registered label constructs
		for _, label := range ModelNames() {
			s := NewSystem(label, 298.15, 10)
			assert.NotNil(t, s.Phase(0), label)
			assert.NotNil(t, s.Phase(1), label)
		}
		assert.True(t, HasModel("electrolyte-cpa"))
		assert.False(t, HasModel("ideal-gas"))
	}
	{ // Unknown labels panic
		assert.Panics(t, func() { NewSystem("not-a-model", 298.15, 10) })
	}
}

func TestStatePointGuards(t *testing.T) {
	assert.Panics(t, func() { NewSystemSrkEos(-10, 1) })
	assert.Panics(t, func() { NewSystemSrkEos(300, -1) })
	s := NewSystemSrkEos(298.15, 10)
	assert.Panics(t, func() { s.SetTemperature(-5) })
	assert.Panics(t, func() { s.SetPressure(-5) })
}

func TestCompositionHandling(t *testing.T) {
	s := NewSystemSrkEos(298.15, 10)
	assert.Error(t, s.AddComponent("unobtainium", 1))
	assert.NoError(t, s.AddComponent("methane", 0.8))
	assert.NoError(t, s.AddComponent("ethane", 0.2))
	{ // Components land in every active slot
		assert.Equal(t, 2, s.Phase(0).NumberOfComponents())
		assert.Equal(t, 2, s.Phase(1).NumberOfComponents())
	}
	{ // Repeated adds accumulate
		assert.NoError(t, s.AddComponent("methane", 0.2))
		assert.True(t, near(s.Phase(0).ComponentByName("methane").NumberOfMoles, 1.0))
		assert.True(t, near(s.TotalNumberOfMoles(), 1.2))
	}
	{ // Overall mole fractions
		x := s.MolarComposition()
		assert.Len(t, x, 2)
		assert.True(t, near(x[0], 1.0/1.2))
		assert.True(t, near(x[0]+x[1], 1.0))
	}
}

func TestStateFanOut(t *testing.T) {
	s := NewSystemSrkEos(298.15, 10)
	assert.NoError(t, s.AddComponent("methane", 1))
	s.SetTemperature(320)
	s.SetPressure(50)
	for i := 0; i < s.NumberOfPhases(); i++ {
		assert.True(t, near(s.Phase(i).Temperature(), 320))
		assert.True(t, near(s.Phase(i).Pressure(), 50))
	}
	s.UseVolumeCorrection(true)
	assert.True(t, s.Phase(0).VolumeCorrection())
	assert.True(t, s.Phase(1).VolumeCorrection())
	s.SetAttractiveTerm(phase.AtractiveTwuCoon)
	assert.Equal(t, phase.AtractiveTwuCoon, s.Phase(1).AttractiveTermNumber())
}

func TestSolidAndHydrateSlots(t *testing.T) {
	s := NewSystemSrkEos(278.15, 80)
	assert.NoError(t, s.AddComponent("methane", 0.9))
	assert.NoError(t, s.AddComponent("water", 0.1))
	{ // Solid check appends slot 3 seeded from the reference phase
		assert.Nil(t, s.Phase(3))
		s.SetSolidPhaseCheck(true)
		assert.True(t, s.SolidPhaseCheck())
		solid := s.Phase(3)
		assert.NotNil(t, solid)
		assert.Equal(t, phase.Solid, solid.Type())
		assert.Equal(t, 2, solid.NumberOfComponents())
		assert.True(t, solid.RefPhase() == s.Phase(0))
		assert.Equal(t, 4, s.MaxNumberOfPhases())
	}
	{ // Hydrate check appends slot 4
		s.SetHydrateCheck(true)
		hyd := s.Phase(4)
		assert.NotNil(t, hyd)
		assert.Equal(t, phase.Hydrate, hyd.Type())
		assert.True(t, hyd.RefPhase() == s.Phase(0))
		assert.Equal(t, 5, s.MaxNumberOfPhases())
	}
	{ // Idempotent
		s.SetSolidPhaseCheck(true)
		s.SetHydrateCheck(true)
		assert.Equal(t, 5, s.MaxNumberOfPhases())
	}
	{ // Components added later still reach the extra slots
		assert.NoError(t, s.AddComponent("CO2", 0.05))
		assert.Equal(t, 3, s.Phase(3).NumberOfComponents())
		assert.Equal(t, 3, s.Phase(4).NumberOfComponents())
	}
	{ // The hydrate check creates the solid slot on its own
		h := NewSystemSrkEos(278.15, 80)
		assert.NoError(t, h.AddComponent("methane", 1))
		h.SetHydrateCheck(true)
		assert.NotNil(t, h.Phase(3))
		assert.NotNil(t, h.Phase(4))
	}
}

func TestSalinity(t *testing.T) {
	s := NewSystemElectrolyteCPA(298.15, 10)
	{ // Salt before water is staged, not counted
		assert.NoError(t, s.AddSalt("NaCl", 0.05))
		assert.True(t, near(s.Salinity(), 0.0))
	}
	{ // Water arrives: molality = mol salt / kg water
		assert.NoError(t, s.AddComponent("water", 1.0))
		assert.InDelta(t, 0.05/0.018015, s.Salinity(), 1.0e-6)
	}
	{ // More salt accumulates
		assert.NoError(t, s.AddSalt("NaCl", 0.05))
		assert.InDelta(t, 0.10/0.018015, s.Salinity(), 1.0e-6)
	}
	{ // Ions landed as components
		assert.True(t, s.Phase(1).HasComponent("Na+"))
		assert.True(t, s.Phase(1).HasComponent("Cl-"))
	}
	{ // The molality reaches the phases
		assert.InDelta(t, s.Salinity(), s.Phase(1).Molality(), 1.0e-9)
	}
	{ // CaCl2 dissolves with its stoichiometry
		assert.NoError(t, s.AddSalt("CaCl2", 0.01))
		assert.True(t, near(s.Phase(0).ComponentByName("Cl-").NumberOfMoles, 0.12))
	}
	{ // Unknown salt
		assert.Error(t, s.AddSalt("MgSO4", 0.01))
	}
}

func TestSolventEnhancement(t *testing.T) {
	s := NewSystemElectrolyteCPA(298.15, 10)
	assert.True(t, near(s.SolventEnhancementExponent(), 1.0))
	s.SetSolventEnhancementExponent(1.8)
	assert.True(t, near(s.SolventEnhancementExponent(), 1.8))
	aq := s.PhaseByType(phase.Aqueous).(*phase.PhaseElectrolyteCPA)
	assert.True(t, near(aq.SolventEnhancementExponent(), 1.8))
}

func TestBinaryInteractionOverride(t *testing.T) {
	s := NewSystemSrkEos(298.15, 50)
	assert.NoError(t, s.AddComponent("methane", 0.9))
	assert.NoError(t, s.AddComponent("CO2", 0.1))
	assert.NoError(t, s.Init(1))
	zBefore := s.Phase(0).Z()
	assert.Error(t, s.SetBinaryInteractionParameter("methane", "helium", 0.1))
	assert.NoError(t, s.SetBinaryInteractionParameter("methane", "CO2", 0.35))
	assert.NoError(t, s.Init(1))
	assert.False(t, near(zBefore, s.Phase(0).Z()))
}

func TestDensityConsistency(t *testing.T) {
	build := func(s SystemInterface) SystemInterface {
		assert.NoError(t, s.AddComponent("methane", 1.0))
		assert.NoError(t, s.Init(1))
		return s
	}
	srk := build(NewSystemSrkEos(298.15, 10))
	pr := build(NewSystemPrEos(298.15, 10))
	{ // Both cubics sit near the ideal gas density of 6.5 kg/m3
		assert.InDelta(t, 6.6, srk.Density(), 0.4)
		assert.InDelta(t, 6.6, pr.Density(), 0.4)
	}
	{ // Peneloux translation nudges the density without changing the EOS root
		pen := build(NewSystemSrkPenelouxEos(298.15, 10))
		assert.True(t, pen.Density() > srk.Density())
		assert.True(t, near(pen.Phase(0).Z(), srk.Phase(0).Z()))
	}
	{ // MolarVolume is the beta-weighted slot average
		v := srk.MolarVolume()
		assert.True(t, v > 0)
		gasV := srk.Phase(0).MolarVolume()
		liqV := srk.Phase(1).MolarVolume()
		assert.True(t, near(v, (gasV+liqV)/2))
	}
}

func TestSystemClone(t *testing.T) {
	s := NewSystemSrkEos(278.15, 80)
	assert.NoError(t, s.AddComponent("methane", 0.9))
	assert.NoError(t, s.AddComponent("water", 0.1))
	s.SetHydrateCheck(true)
	assert.NoError(t, s.Init(1))

	cc := s.Clone()
	{ // Cloned slots are distinct objects with equal state
		assert.False(t, s.Phase(0) == cc.Phase(0))
		assert.True(t, near(s.Phase(0).Z(), cc.Phase(0).Z()))
		assert.Equal(t, s.ModelName(), cc.ModelName())
		assert.True(t, cc.HydrateCheck())
	}
	{ // The solid slot points at the cloned reference phase, not the original
		assert.True(t, cc.Phase(3).RefPhase() == cc.Phase(0))
		assert.True(t, cc.Phase(4).RefPhase() == cc.Phase(0))
		assert.False(t, cc.Phase(3).RefPhase() == s.Phase(0))
	}
	{ // Mutating the clone leaves the original untouched
		assert.NoError(t, cc.AddComponent("CO2", 0.2))
		assert.Equal(t, 2, s.Phase(0).NumberOfComponents())
		assert.Equal(t, 3, cc.Phase(0).NumberOfComponents())
	}
	{ // Typed clones keep their concrete type
		p := NewSystemPrEos(298.15, 10)
		_, ok := p.Clone().(*SystemPrEos)
		assert.True(t, ok)
		e := NewSystemElectrolyteCPA(298.15, 10)
		_, ok = e.Clone().(*SystemElectrolyteCPA)
		assert.True(t, ok)
	}
}

func TestReferenceSystems(t *testing.T) {
	{ // Span-Wagner only accepts CO2
		s := NewSystemSpanWagnerEos(298.15, 50)
		assert.NoError(t, s.AddComponent("CO2", 1.0))
		assert.Panics(t, func() { _ = s.AddComponent("methane", 0.1) })
	}
	{ // GERG-2004 accepts the natural gas components
		s := NewSystemGERG2004Eos(298.15, 50)
		assert.NoError(t, s.AddComponent("methane", 0.9))
		assert.NoError(t, s.AddComponent("nitrogen", 0.1))
		assert.NoError(t, s.Init(1))
		assert.True(t, s.Phase(0).Z() > 0.7 && s.Phase(0).Z() < 1.0)
	}
}

func TestGESystems(t *testing.T) {
	{ // The liquid slot carries the activity model
		s := NewSystemNRTL(330, 1)
		assert.NoError(t, s.AddComponent("ethanol", 0.5))
		assert.NoError(t, s.AddComponent("water", 0.5))
		s.LiquidModel().SetNRTLParameter(0, 1, 3000, 1500, 0.3)
		gamma := s.LiquidModel().ActivityCoefficients()
		assert.Len(t, gamma, 2)
		assert.True(t, gamma[0] > 1.0)
	}
	{ // Pitzer pairs the aqueous activity phase with the salinity plumbing
		s := NewSystemPitzer(298.15, 1)
		assert.NoError(t, s.AddComponent("water", 1.0))
		assert.NoError(t, s.AddSalt("NaCl", 0.1))
		gamma := s.LiquidModel().ActivityCoefficients()
		gpm := s.LiquidModel().MeanActivityCoefficient()
		assert.True(t, gpm < 1.0)
		assert.True(t, near(gamma[1], gpm))
	}
	{ // Wilson and UNIFAC construct and expose their models
		assert.NotNil(t, NewSystemWilson(330, 1).LiquidModel())
		assert.NotNil(t, NewSystemUNIFAC(330, 1).LiquidModel())
	}
}

func TestInitLevels(t *testing.T) {
	s := NewSystemSrkEos(298.15, 10)
	assert.NoError(t, s.AddComponent("methane", 1))
	{ // Level 0 never touches the EOS state
		assert.NoError(t, s.Init(0))
		assert.True(t, near(s.Phase(0).Z(), 1.0))
	}
	{ // Level 1 solves the cubic
		assert.NoError(t, s.Init(1))
		assert.True(t, s.Phase(0).Z() < 1.0)
	}
	{ // Init surfaces phase errors
		empty := NewSystemSrkEos(298.15, 10)
		assert.Error(t, empty.Init(1))
	}
}

func near(a, b float64) (l bool) {
	bound := 1.e-08 * math.Abs(a)
	if bound < 1.e-12 {
		bound = 1.e-12
	}
	if math.Abs(a-b) < bound {
		l = true
	}
	return
}
