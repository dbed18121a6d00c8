package system

import (
	"github.com/equinor/gothermo/thermo/phase"
)

// SystemSrkEos models the fluid with the Soave-Redlich-Kwong EOS in every
// slot.
type SystemSrkEos struct {
	SystemThermo
}

func NewSystemSrkEos(T, P float64) (s *SystemSrkEos) {
	s = &SystemSrkEos{newSystemThermo("SRK-EOS", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseSrkEos())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	return
}

func (s *SystemSrkEos) Clone() SystemInterface {
	return &SystemSrkEos{s.cloneThermo()}
}

// SystemSrkPenelouxEos is SRK with the Peneloux volume translation
// switched on.
type SystemSrkPenelouxEos struct {
	SystemThermo
}

func NewSystemSrkPenelouxEos(T, P float64) (s *SystemSrkPenelouxEos) {
	s = &SystemSrkPenelouxEos{newSystemThermo("SRK-Peneloux-EOS", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseSrkEos())
	s.SetAttractiveTerm(phase.AtractiveSrk)
	s.UseVolumeCorrection(true)
	return
}

func (s *SystemSrkPenelouxEos) Clone() SystemInterface {
	return &SystemSrkPenelouxEos{s.cloneThermo()}
}

// SystemSrkMathiasCopeman is SRK with the Mathias-Copeman alpha function,
// using the component database parameter sets where present.
type SystemSrkMathiasCopeman struct {
	SystemThermo
}

func NewSystemSrkMathiasCopeman(T, P float64) (s *SystemSrkMathiasCopeman) {
	s = &SystemSrkMathiasCopeman{newSystemThermo("SRK-MC-EOS", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseSrkEos())
	s.SetAttractiveTerm(phase.AtractiveMathiasCopeman)
	return
}

func (s *SystemSrkMathiasCopeman) Clone() SystemInterface {
	return &SystemSrkMathiasCopeman{s.cloneThermo()}
}

// SystemSrkTwuCoonEos is SRK with the generalized Twu-Coon alpha function.
type SystemSrkTwuCoonEos struct {
	SystemThermo
}

func NewSystemSrkTwuCoonEos(T, P float64) (s *SystemSrkTwuCoonEos) {
	s = &SystemSrkTwuCoonEos{newSystemThermo("SRK-TwuCoon-EOS", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseSrkEos())
	s.SetAttractiveTerm(phase.AtractiveTwuCoon)
	return
}

func (s *SystemSrkTwuCoonEos) Clone() SystemInterface {
	return &SystemSrkTwuCoonEos{s.cloneThermo()}
}

// SystemSrkTwuCoonParamEos is SRK with the per-component three-parameter
// Twu-Coon alpha function.
type SystemSrkTwuCoonParamEos struct {
	SystemThermo
}

func NewSystemSrkTwuCoonParamEos(T, P float64) (s *SystemSrkTwuCoonParamEos) {
	s = &SystemSrkTwuCoonParamEos{newSystemThermo("SRK-TwuCoonParam-EOS", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseSrkEos())
	s.SetAttractiveTerm(phase.AtractiveTwuCoonParam)
	return
}

func (s *SystemSrkTwuCoonParamEos) Clone() SystemInterface {
	return &SystemSrkTwuCoonParamEos{s.cloneThermo()}
}

// SystemSrkTwuCoonStatoilEos is SRK with the Twu-Coon term restricted to
// mercury, the trace-component tuning variant.
type SystemSrkTwuCoonStatoilEos struct {
	SystemThermo
}

func NewSystemSrkTwuCoonStatoilEos(T, P float64) (s *SystemSrkTwuCoonStatoilEos) {
	s = &SystemSrkTwuCoonStatoilEos{newSystemThermo("SRK-TwuCoonStatoil-EOS", T, P)}
	s.setPhases(phase.NewPhaseSrkEos(), phase.NewPhaseSrkEos())
	s.SetAttractiveTerm(phase.AtractiveTwuCoonStatoil)
	return
}

func (s *SystemSrkTwuCoonStatoilEos) Clone() SystemInterface {
	return &SystemSrkTwuCoonStatoilEos{s.cloneThermo()}
}
