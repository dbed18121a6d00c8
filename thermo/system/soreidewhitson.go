package system

import (
	"github.com/equinor/gothermo/thermo/phase"
)

// SystemSoreideWhitson is SRK with the salinity-corrected Soreide-Whitson
// water alpha function. The salinity accumulator of the base system feeds
// the correction through the phase molality.
type SystemSoreideWhitson struct {
	SystemThermo
}

func NewSystemSoreideWhitson(T, P float64) (s *SystemSoreideWhitson) {
	s = &SystemSoreideWhitson{newSystemThermo("Soreide-Whitson-EOS", T, P)}
	aqueous := phase.NewPhaseSrkEos()
	aqueous.SetType(phase.Aqueous)
	s.setPhases(phase.NewPhaseSrkEos(), aqueous)
	s.SetAttractiveTerm(phase.AtractiveSoreideWhitson)
	return
}

func (s *SystemSoreideWhitson) Clone() SystemInterface {
	return &SystemSoreideWhitson{s.cloneThermo()}
}
