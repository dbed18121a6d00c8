package system

import (
	"github.com/equinor/gothermo/thermo/phase"
)

// SystemPrEos models the fluid with the Peng-Robinson EOS (1976 alpha).
type SystemPrEos struct {
	SystemThermo
}

func NewSystemPrEos(T, P float64) (s *SystemPrEos) {
	s = &SystemPrEos{newSystemThermo("PR-EOS", T, P)}
	s.setPhases(phase.NewPhasePrEos(), phase.NewPhasePrEos())
	s.SetAttractiveTerm(phase.AtractivePr)
	return
}

func (s *SystemPrEos) Clone() SystemInterface {
	return &SystemPrEos{s.cloneThermo()}
}

// SystemPrEos1978 uses the 1978 alpha polynomial with its heavy-component
// branch.
type SystemPrEos1978 struct {
	SystemThermo
}

func NewSystemPrEos1978(T, P float64) (s *SystemPrEos1978) {
	s = &SystemPrEos1978{newSystemThermo("PR78-EOS", T, P)}
	s.setPhases(phase.NewPhasePrEos(), phase.NewPhasePrEos())
	s.SetAttractiveTerm(phase.AtractivePr1978)
	return
}

func (s *SystemPrEos1978) Clone() SystemInterface {
	return &SystemPrEos1978{s.cloneThermo()}
}

// SystemPrMathiasCopeman is PR with the Mathias-Copeman alpha in its PR
// parameterization.
type SystemPrMathiasCopeman struct {
	SystemThermo
}

func NewSystemPrMathiasCopeman(T, P float64) (s *SystemPrMathiasCopeman) {
	s = &SystemPrMathiasCopeman{newSystemThermo("PR-MC-EOS", T, P)}
	s.setPhases(phase.NewPhasePrEos(), phase.NewPhasePrEos())
	s.SetAttractiveTerm(phase.AtractiveMathiasCopemanPr)
	return
}

func (s *SystemPrMathiasCopeman) Clone() SystemInterface {
	return &SystemPrMathiasCopeman{s.cloneThermo()}
}

// SystemPrPenelouxEos is PR with the Peneloux volume translation switched
// on.
type SystemPrPenelouxEos struct {
	SystemThermo
}

func NewSystemPrPenelouxEos(T, P float64) (s *SystemPrPenelouxEos) {
	s = &SystemPrPenelouxEos{newSystemThermo("PR-Peneloux-EOS", T, P)}
	s.setPhases(phase.NewPhasePrEos(), phase.NewPhasePrEos())
	s.SetAttractiveTerm(phase.AtractivePr)
	s.UseVolumeCorrection(true)
	return
}

func (s *SystemPrPenelouxEos) Clone() SystemInterface {
	return &SystemPrPenelouxEos{s.cloneThermo()}
}
