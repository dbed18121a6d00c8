package system

import (
	"github.com/equinor/gothermo/thermo/phase"
)

// The GE-activity systems pair an SRK gas slot with an activity-model
// liquid slot. The activity phase supplies the liquid non-ideality; the
// standard-state fugacity belongs to the external core.

// SystemNRTL is the NRTL activity model system.
type SystemNRTL struct {
	SystemThermo
}

func NewSystemNRTL(T, P float64) (s *SystemNRTL) {
	s = &SystemNRTL{newSystemThermo("NRTL-GE-model", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseGENRTL())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	return
}

// LiquidModel returns the NRTL phase for parameter wiring.
func (s *SystemNRTL) LiquidModel() *phase.PhaseGENRTL {
	return s.Phase(1).(*phase.PhaseGENRTL)
}

func (s *SystemNRTL) Clone() SystemInterface {
	return &SystemNRTL{s.cloneThermo()}
}

// SystemWilson is the Wilson activity model system.
type SystemWilson struct {
	SystemThermo
}

func NewSystemWilson(T, P float64) (s *SystemWilson) {
	s = &SystemWilson{newSystemThermo("Wilson-GE-model", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseGEWilson())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	return
}

func (s *SystemWilson) LiquidModel() *phase.PhaseGEWilson {
	return s.Phase(1).(*phase.PhaseGEWilson)
}

func (s *SystemWilson) Clone() SystemInterface {
	return &SystemWilson{s.cloneThermo()}
}

// SystemUNIFAC is the UNIFAC group-contribution activity model system.
type SystemUNIFAC struct {
	SystemThermo
}

func NewSystemUNIFAC(T, P float64) (s *SystemUNIFAC) {
	s = &SystemUNIFAC{newSystemThermo("UNIFAC-GE-model", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseGEUnifac())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	return
}

func (s *SystemUNIFAC) LiquidModel() *phase.PhaseGEUnifac {
	return s.Phase(1).(*phase.PhaseGEUnifac)
}

func (s *SystemUNIFAC) Clone() SystemInterface {
	return &SystemUNIFAC{s.cloneThermo()}
}

// SystemPitzer is the Pitzer aqueous electrolyte activity model system.
type SystemPitzer struct {
	SystemThermo
}

func NewSystemPitzer(T, P float64) (s *SystemPitzer) {
	s = &SystemPitzer{newSystemThermo("Pitzer-GE-model", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseGEPitzer())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	return
}

func (s *SystemPitzer) LiquidModel() *phase.PhaseGEPitzer {
	return s.Phase(1).(*phase.PhaseGEPitzer)
}

func (s *SystemPitzer) Clone() SystemInterface {
	return &SystemPitzer{s.cloneThermo()}
}
