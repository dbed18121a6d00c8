package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equinor/gothermo/fluidparams"
	"github.com/equinor/gothermo/thermo/phase"
)

func TestBuildSystem(t *testing.T) {
	fd := &fluidparams.FluidDeck{}
	err := fd.Parse([]byte(`
Title: "Rich Gas"
Model: SRK-Peneloux
Temperature: 288.15
Pressure: 65.
Components:
  methane: 0.85
  ethane: 0.08
  propane: 0.04
  CO2: 0.03
Kij:
  - Pair: [methane, CO2]
    Value: 0.14
VolumeCorrection: true
`))
	assert.NoError(t, err)

	s, err := BuildSystem(fd)
	assert.NoError(t, err)
	assert.Equal(t, "SRK-Peneloux-EOS", s.ModelName())
	assert.Equal(t, "Rich Gas", s.FluidName())
	assert.True(t, s.VolumeCorrection())
	assert.Equal(t, 4, s.Phase(0).NumberOfComponents())
	assert.InDelta(t, 1.0, s.TotalNumberOfMoles(), 1.0e-9)
	{ // The deck state point reached the phases and the cubic was solved
		assert.InDelta(t, 288.15, s.Phase(0).Temperature(), 1.0e-9)
		z := s.Phase(0).Z()
		assert.True(t, z > 0.5 && z < 1.0)
		assert.True(t, s.Density() > 0)
	}
}

func TestBuildSystemWithSaltsAndFlags(t *testing.T) {
	fd := &fluidparams.FluidDeck{}
	err := fd.Parse([]byte(`
Model: Electrolyte-CPA
Temperature: 278.15
Pressure: 80.
Components:
  methane: 0.90
  water: 0.10
Salts:
  NaCl: 0.005
HydrateCheck: true
`))
	assert.NoError(t, err)

	s, err := BuildSystem(fd)
	assert.NoError(t, err)
	assert.Equal(t, "Electrolyte-CPA-EOS", s.ModelName())
	assert.True(t, s.HydrateCheck())
	assert.NotNil(t, s.Phase(3))
	assert.NotNil(t, s.Phase(4))
	assert.Equal(t, phase.Aqueous, s.Phase(1).Type())
	assert.True(t, s.Salinity() > 0)
	assert.True(t, s.Phase(1).HasComponent("Na+"))
}

func TestBuildSystemErrors(t *testing.T) {
	{ // Unknown component surfaces as an error
		fd := &fluidparams.FluidDeck{
			Model:       "SRK",
			Temperature: 288.15,
			Pressure:    65,
			Components:  map[string]float64{"kryptonite": 1},
		}
		_, err := BuildSystem(fd)
		assert.Error(t, err)
	}
	{ // Unknown model panics with the candidate list
		fd := &fluidparams.FluidDeck{
			Model:       "not-a-model",
			Temperature: 288.15,
			Pressure:    65,
			Components:  map[string]float64{"methane": 1},
		}
		assert.Panics(t, func() { _, _ = BuildSystem(fd) })
	}
}
