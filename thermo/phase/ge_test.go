package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equinor/gothermo/thermo/component"
)

func addNamed(t *testing.T, p PhaseInterface, names []string, moles []float64) {
	for i, name := range names {
		d, err := component.GetComponent(name)
		assert.NoError(t, err)
		p.AddComponent(d, moles[i])
	}
}

func TestNRTL(t *testing.T) {
	p := NewPhaseGENRTL()
	addNamed(t, p, []string{"ethanol", "water"}, []float64{0.5, 0.5})
	p.SetTemperature(350)
	{ // Without parameters the model is ideal
		for _, g := range p.ActivityCoefficients() {
			assert.True(t, near(g, 1.0))
		}
	}
	{ // Symmetric parameters give symmetric coefficients at equimolar
		p.SetNRTLParameter(0, 1, 2500, 2500, 0.3)
		gamma := p.ActivityCoefficients()
		assert.True(t, near(gamma[0], gamma[1]))
		assert.True(t, gamma[0] > 1.0)
	}
	{ // Asymmetric energies break the symmetry
		p.SetNRTLParameter(0, 1, 3500, 1200, 0.3)
		gamma := p.ActivityCoefficients()
		assert.False(t, near(gamma[0], gamma[1]))
	}
	{ // Clone carries the parameter matrices
		cc := p.Clone().(*PhaseGENRTL)
		g1 := p.ActivityCoefficients()
		g2 := cc.ActivityCoefficients()
		assert.True(t, near(g1[0], g2[0]))
	}
}

func TestWilson(t *testing.T) {
	{ // Pure component is ideal
		p := NewPhaseGEWilson()
		addNamed(t, p, []string{"ethanol"}, []float64{1.0})
		p.SetTemperature(350)
		gamma := p.ActivityCoefficients()
		assert.True(t, near(gamma[0], 1.0))
	}
	{ // Binary with interaction energies deviates from ideal
		p := NewPhaseGEWilson()
		addNamed(t, p, []string{"ethanol", "water"}, []float64{0.4, 0.6})
		p.SetTemperature(350)
		p.SetWilsonParameter(0, 1, 4000, 5000)
		gamma := p.ActivityCoefficients()
		assert.True(t, gamma[0] > 1.0)
		assert.True(t, gamma[1] > 1.0)
	}
}

func TestUnifac(t *testing.T) {
	{ // Same main group: residual part cancels, near-ideal mixture
		p := NewPhaseGEUnifac()
		addNamed(t, p, []string{"methane", "ethane"}, []float64{0.5, 0.5})
		p.SetTemperature(200)
		for _, g := range p.ActivityCoefficients() {
			assert.InDelta(t, 1.0, g, 0.05)
		}
	}
	{ // Ethanol/water shows the known positive deviation
		p := NewPhaseGEUnifac()
		addNamed(t, p, []string{"ethanol", "water"}, []float64{0.5, 0.5})
		p.SetTemperature(351)
		gamma := p.ActivityCoefficients()
		assert.True(t, gamma[0] > 1.0)
		assert.True(t, gamma[1] > 1.0)
	}
	{ // Dilution drives the solute coefficient up, the solvent toward 1
		p := NewPhaseGEUnifac()
		addNamed(t, p, []string{"ethanol", "water"}, []float64{0.01, 0.99})
		p.SetTemperature(351)
		gamma := p.ActivityCoefficients()
		assert.True(t, gamma[0] > gamma[1])
		assert.InDelta(t, 1.0, gamma[1], 0.05)
	}
}

func TestPitzer(t *testing.T) {
	p := NewPhaseGEPitzer()
	addNamed(t, p, []string{"water", "Na+", "Cl-"}, []float64{1.0, 0.1, 0.1})
	p.SetTemperature(298.15)
	{ // Debye-Hueckel slope at 25 C
		assert.InDelta(t, 0.392, debyeHuckelAPhi(298.15), 0.002)
	}
	{ // Zero molality is ideal
		assert.True(t, near(p.MeanActivityCoefficient(), 1.0))
	}
	{ // NaCl at 0.1 mol/kg, tabulated mean activity coefficient 0.778
		p.SetMolality(0.1)
		assert.InDelta(t, 0.778, p.MeanActivityCoefficient(), 0.01)
	}
	{ // Ions carry the mean coefficient, the solvent stays at unity
		gamma := p.ActivityCoefficients()
		assert.True(t, near(gamma[0], 1.0))
		assert.True(t, near(gamma[1], gamma[2]))
		assert.True(t, gamma[1] < 1.0)
	}
	{ // Aqueous by construction
		assert.Equal(t, Aqueous, p.Type())
	}
}

func TestCPAPhases(t *testing.T) {
	p := NewPhaseSrkCPA()
	addNamed(t, p, []string{"methane", "water", "MEG"}, []float64{0.2, 0.6, 0.2})
	{ // Association bookkeeping
		assert.Equal(t, "4C", p.AssociationScheme("water"))
		assert.Equal(t, "2B", p.AssociationScheme("MEG"))
		assert.Equal(t, "", p.AssociationScheme("methane"))
		assert.Equal(t, 6, p.NumberOfAssociationSites())
	}
	{ // CPA keeps the Statoil attractive term
		assert.Equal(t, AtractiveCpaStatoil, p.AttractiveTermNumber())
		assert.Equal(t, "CPA-SRK-EOS", p.ModelName())
	}
}

func TestElectrolyteCPAPhase(t *testing.T) {
	p := NewPhaseElectrolyteCPA()
	addNamed(t, p, []string{"water", "methanol", "Na+", "Cl-"},
		[]float64{0.7, 0.1, 0.1, 0.1})
	{ // Ionic strength is half the charge-weighted ion fraction sum
		assert.True(t, near(p.IonicStrength(), 0.5*(0.1+0.1)))
	}
	{ // Water fraction counts solvent entries only
		assert.True(t, near(p.WaterFractionOfSolvent(), 0.7/0.8))
	}
	{ // The enhancement exponent raises the effective ionic strength
		p.SetSolventEnhancementExponent(2.0)
		assert.True(t, p.EffectiveIonicStrength() > p.IonicStrength())
		assert.True(t, near(p.SolventEnhancementExponent(), 2.0))
	}
	{ // Clone keeps the exponent
		cc := p.Clone().(*PhaseElectrolyteCPA)
		assert.True(t, near(cc.SolventEnhancementExponent(), 2.0))
	}
}

func TestSolidAndHydratePhases(t *testing.T) {
	d, _ := component.GetComponent("methane")
	w, _ := component.GetComponent("water")

	ref := NewPhaseSrkEos()
	ref.SetType(Gas)
	ref.AddComponent(d, 0.9)
	ref.AddComponent(w, 0.1)
	ref.SetTemperature(278.15)
	ref.SetPressure(80.0)
	assert.NoError(t, ref.Init())

	{ // The solid slot borrows reference-phase fugacities once wired
		solid := NewPhasePureComponentSolid()
		solid.AddComponent(d, 0.9)
		solid.AddComponent(w, 0.1)
		solid.SetRefPhase(ref)
		assert.Equal(t, Solid, solid.Type())
		phiRef := ref.FugacityCoefficients()
		phiSolid := solid.FugacityCoefficients()
		assert.True(t, near(phiRef[0], phiSolid[0]))
	}
	{ // Hydrate structure bookkeeping
		hyd := NewPhaseHydrate()
		hyd.AddComponent(d, 0.9)
		hyd.AddComponent(w, 0.1)
		assert.Equal(t, "structure2", hyd.Structure())
		small, large := hyd.CavitiesPerWater()
		assert.True(t, near(small, 2.0/17.0))
		assert.True(t, near(large, 1.0/17.0))
		hyd.SetStructure("structure1")
		small, large = hyd.CavitiesPerWater()
		assert.True(t, near(small, 1.0/23.0))
		assert.True(t, near(large, 3.0/23.0))
		assert.Panics(t, func() { hyd.SetStructure("structure9") })
		assert.Equal(t, 1, hyd.NumberOfFormers())
	}
	{ // Without a reference phase the slots report ideal coefficients
		hyd := NewPhaseHydrate()
		hyd.AddComponent(d, 1.0)
		phi := hyd.FugacityCoefficients()
		assert.True(t, near(phi[0], 1.0))
	}
}
