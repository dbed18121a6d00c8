package fluidparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var deckYAML = []byte(`
Title: "Sour Gas"
Model: SRK-Peneloux
Temperature: 288.15
Pressure: 65.
Components:
  methane: 0.82
  ethane: 0.07
  CO2: 0.06
  H2S: 0.03
  water: 0.02
Salts:
  NaCl: 0.001
MixingRule: 2
Kij:
  - Pair: [methane, H2S]
    Value: 0.09
VolumeCorrection: true
HydrateCheck: true
`)

func TestDeckParse(t *testing.T) {
	fd := &FluidDeck{}
	assert.NoError(t, fd.Parse(deckYAML))
	assert.Equal(t, "Sour Gas", fd.Title)
	assert.Equal(t, "SRK-Peneloux", fd.Model)
	assert.Equal(t, 288.15, fd.Temperature)
	assert.Equal(t, 65.0, fd.Pressure)
	assert.Len(t, fd.Components, 5)
	assert.Equal(t, 0.82, fd.Components["methane"])
	assert.Equal(t, 0.001, fd.Salts["NaCl"])
	assert.Equal(t, 2, fd.MixingRule)
	assert.Len(t, fd.Kij, 1)
	assert.Equal(t, [2]string{"methane", "H2S"}, fd.Kij[0].Pair)
	assert.Equal(t, 0.09, fd.Kij[0].Value)
	assert.True(t, fd.VolumeCorrection)
	assert.False(t, fd.SolidCheck)
	assert.True(t, fd.HydrateCheck)
	{ // Deterministic ordering helpers
		names := fd.ComponentNames()
		assert.Len(t, names, 5)
		for i := 1; i < len(names); i++ {
			assert.True(t, names[i-1] < names[i])
		}
	}
}

func TestDeckValidation(t *testing.T) {
	parse := func(src string) error {
		fd := &FluidDeck{}
		return fd.Parse([]byte(src))
	}
	{ // Model is mandatory
		assert.Error(t, parse(`
Temperature: 288.15
Pressure: 65.
Components:
  methane: 1.
`))
	}
	{ // State point must be positive
		assert.Error(t, parse(`
Model: SRK
Temperature: -1.
Pressure: 65.
Components:
  methane: 1.
`))
		assert.Error(t, parse(`
Model: SRK
Temperature: 288.15
Components:
  methane: 1.
`))
	}
	{ // Composition must exist and be non-negative
		assert.Error(t, parse(`
Model: SRK
Temperature: 288.15
Pressure: 65.
`))
		assert.Error(t, parse(`
Model: SRK
Temperature: 288.15
Pressure: 65.
Components:
  methane: -0.5
`))
	}
	{ // Kij pairs need both names
		assert.Error(t, parse(`
Model: SRK
Temperature: 288.15
Pressure: 65.
Components:
  methane: 1.
Kij:
  - Pair: [methane]
    Value: 0.1
`))
	}
	{ // Malformed YAML
		assert.Error(t, parse(`Model: [unclosed`))
	}
}
