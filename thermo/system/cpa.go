package system

import (
	"github.com/equinor/gothermo/thermo/phase"
)

// SystemSrkCPA is the CPA model: SRK cubic core with association
// bookkeeping and the CPA-Statoil attractive term in every slot.
type SystemSrkCPA struct {
	SystemThermo
}

func NewSystemSrkCPA(T, P float64) (s *SystemSrkCPA) {
	s = &SystemSrkCPA{newSystemThermo("CPA-SRK-EOS", T, P)}
	s.setPhases(phase.NewPhaseSrkCPA(), phase.NewPhaseSrkCPA())
	s.SetAttractiveTerm(phase.AtractiveCpaStatoil)
	return
}

func (s *SystemSrkCPA) Clone() SystemInterface {
	return &SystemSrkCPA{s.cloneThermo()}
}

// SystemElectrolyteCPA pairs a CPA gas slot with an electrolyte-CPA
// aqueous slot carrying the ion bookkeeping and the mixed-solvent
// enhancement exponent.
type SystemElectrolyteCPA struct {
	SystemThermo
}

func NewSystemElectrolyteCPA(T, P float64) (s *SystemElectrolyteCPA) {
	s = &SystemElectrolyteCPA{newSystemThermo("Electrolyte-CPA-EOS", T, P)}
	aqueous := phase.NewPhaseElectrolyteCPA()
	aqueous.SetType(phase.Aqueous)
	s.setPhases(phase.NewPhaseSrkCPA(), aqueous)
	s.SetAttractiveTerm(phase.AtractiveCpaStatoil)
	return
}

// SetSolventEnhancementExponent wires the mixed-solvent correction
// exponent into the aqueous slot.
func (s *SystemElectrolyteCPA) SetSolventEnhancementExponent(e float64) {
	s.solventEnhancementExp = e
	if aq, ok := s.PhaseByType(phase.Aqueous).(*phase.PhaseElectrolyteCPA); ok {
		aq.SetSolventEnhancementExponent(e)
	}
}

func (s *SystemElectrolyteCPA) SolventEnhancementExponent() float64 {
	return s.solventEnhancementExp
}

func (s *SystemElectrolyteCPA) Clone() SystemInterface {
	return &SystemElectrolyteCPA{s.cloneThermo()}
}
