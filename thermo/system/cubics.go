package system

import (
	"github.com/equinor/gothermo/thermo/phase"
)

// SystemRkEos models the fluid with the original Redlich-Kwong EOS.
type SystemRkEos struct {
	SystemThermo
}

func NewSystemRkEos(T, P float64) (s *SystemRkEos) {
	s = &SystemRkEos{newSystemThermo("RK-EOS", T, P)}
	s.setPhases(phase.NewPhaseRkEos(), phase.NewPhaseRkEos())
	s.SetAttractiveTerm(phase.AtractiveRk)
	return
}

func (s *SystemRkEos) Clone() SystemInterface {
	return &SystemRkEos{s.cloneThermo()}
}

// SystemTSTEos models the fluid with the Twu-Sim-Tassone EOS.
type SystemTSTEos struct {
	SystemThermo
}

func NewSystemTSTEos(T, P float64) (s *SystemTSTEos) {
	s = &SystemTSTEos{newSystemThermo("TST-EOS", T, P)}
	s.setPhases(phase.NewPhaseTSTEos(), phase.NewPhaseTSTEos())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	return
}

func (s *SystemTSTEos) Clone() SystemInterface {
	return &SystemTSTEos{s.cloneThermo()}
}
