package system

import (
	"github.com/equinor/gothermo/thermo/phase"
)

// SystemGERG2004Eos selects the GERG-2004 wide-range natural gas model
// for every slot.
type SystemGERG2004Eos struct {
	SystemThermo
}

func NewSystemGERG2004Eos(T, P float64) (s *SystemGERG2004Eos) {
	s = &SystemGERG2004Eos{newSystemThermo("GERG-2004-EOS", T, P)}
	s.setPhases(phase.NewPhaseGERG2004(), phase.NewPhaseGERG2004())
	s.SetAttractiveTerm(phase.AtractiveGerg)
	return
}

func (s *SystemGERG2004Eos) Clone() SystemInterface {
	return &SystemGERG2004Eos{s.cloneThermo()}
}

// SystemSpanWagnerEos selects the Span-Wagner CO2 reference equation; the
// fluid is restricted to pure CO2.
type SystemSpanWagnerEos struct {
	SystemThermo
}

func NewSystemSpanWagnerEos(T, P float64) (s *SystemSpanWagnerEos) {
	s = &SystemSpanWagnerEos{newSystemThermo("SpanWagner-EOS", T, P)}
	s.setPhases(phase.NewPhaseSpanWagner(), phase.NewPhaseSpanWagner())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	return
}

func (s *SystemSpanWagnerEos) Clone() SystemInterface {
	return &SystemSpanWagnerEos{s.cloneThermo()}
}
