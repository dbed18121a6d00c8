package phase

import (
	"fmt"
	"math"
	"strings"

	"github.com/equinor/gothermo/thermo/component"
)

// AttractiveTerm selects the alpha-function correlation used by a cubic
// EOS phase. The integer codes are part of the public model configuration
// and are kept stable; not every code in the sequence is implemented,
// which is why the name tables below are maps rather than slices.
type AttractiveTerm int

const (
	AtractiveSrk              AttractiveTerm = 0
	AtractivePr               AttractiveTerm = 1
	AtractiveMathiasCopeman   AttractiveTerm = 4
	AtractiveRk               AttractiveTerm = 5
	AtractivePr1978           AttractiveTerm = 6
	AtractiveGerg             AttractiveTerm = 10
	AtractiveTwuCoon          AttractiveTerm = 11
	AtractiveTwuCoonParam     AttractiveTerm = 12
	AtractiveMathiasCopemanPr AttractiveTerm = 13
	AtractiveCpaStatoil       AttractiveTerm = 15
	AtractiveTwuCoonStatoil   AttractiveTerm = 18
	AtractiveSoreideWhitson   AttractiveTerm = 20
)

var (
	AttractiveTermNames = map[string]AttractiveTerm{
		"srk":            AtractiveSrk,
		"pr":             AtractivePr,
		"mc":             AtractiveMathiasCopeman,
		"rk":             AtractiveRk,
		"pr78":           AtractivePr1978,
		"gerg":           AtractiveGerg,
		"twucoon":        AtractiveTwuCoon,
		"twucoonparam":   AtractiveTwuCoonParam,
		"mcpr":           AtractiveMathiasCopemanPr,
		"cpastatoil":     AtractiveCpaStatoil,
		"twucoonstatoil": AtractiveTwuCoonStatoil,
		"soreidewhitson": AtractiveSoreideWhitson,
	}
	attractiveTermPrintNames = map[AttractiveTerm]string{
		AtractiveSrk:              "Soave (SRK)",
		AtractivePr:               "Peng-Robinson 1976",
		AtractiveMathiasCopeman:   "Mathias-Copeman",
		AtractiveRk:               "Redlich-Kwong",
		AtractivePr1978:           "Peng-Robinson 1978",
		AtractiveGerg:             "GERG water",
		AtractiveTwuCoon:          "Twu-Coon",
		AtractiveTwuCoonParam:     "Twu-Coon parameterized",
		AtractiveMathiasCopemanPr: "Mathias-Copeman (PR form)",
		AtractiveCpaStatoil:       "CPA Statoil",
		AtractiveTwuCoonStatoil:   "Twu-Coon Statoil",
		AtractiveSoreideWhitson:   "Soreide-Whitson",
	}
)

func (at AttractiveTerm) String() (txt string) {
	var ok bool
	if txt, ok = attractiveTermPrintNames[at]; !ok {
		txt = fmt.Sprintf("attractive term %d", int(at))
	}
	return
}

// NewAttractiveTerm maps a label to an attractive term code.
func NewAttractiveTerm(label string) (at AttractiveTerm) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(strings.ReplaceAll(label, "-", ""))
	if at, ok = AttractiveTermNames[label]; !ok {
		err = fmt.Errorf("unable to use attractive term named %s", label)
		panic(err)
	}
	return
}

// Alpha evaluates the alpha function for a component at temperature T.
// salinity is the molality of the phase (mol salt / kg water) and is only
// read by the Soreide-Whitson correlation.
func (at AttractiveTerm) Alpha(c *component.Component, T, salinity float64) (alpha float64) {
	tr := c.Tr(T)
	switch at {
	case AtractiveSrk:
		alpha = soaveAlpha(c.SoaveM(), tr)
	case AtractivePr:
		alpha = soaveAlpha(c.PrM(), tr)
	case AtractivePr1978:
		alpha = soaveAlpha(c.Pr78M(), tr)
	case AtractiveRk:
		alpha = 1.0 / math.Sqrt(tr)
	case AtractiveMathiasCopeman, AtractiveGerg:
		alpha = mathiasCopemanAlpha(c, tr, c.SoaveM())
	case AtractiveMathiasCopemanPr:
		alpha = mathiasCopemanAlpha(c, tr, c.PrM())
	case AtractiveTwuCoon:
		alpha = twuGeneralizedAlpha(c.AcentricFactor, tr)
	case AtractiveTwuCoonParam, AtractiveTwuCoonStatoil:
		if len(c.TwuCoon) == 3 && (at == AtractiveTwuCoonParam || c.Name == "mercury") {
			alpha = twuParamAlpha(c.TwuCoon[0], c.TwuCoon[1], c.TwuCoon[2], tr)
		} else {
			// No parameter set (or non-mercury for the Statoil term):
			// degrade to the Soave form, as the original does.
			alpha = soaveAlpha(c.SoaveM(), tr)
		}
	case AtractiveCpaStatoil:
		if len(c.MathiasCopeman) == 3 {
			alpha = soaveAlpha(c.MathiasCopeman[0], tr)
		} else {
			alpha = soaveAlpha(c.SoaveM(), tr)
		}
	case AtractiveSoreideWhitson:
		if c.Name == "water" {
			alpha = soreideWhitsonAlpha(tr, salinity)
		} else {
			alpha = soaveAlpha(c.SoaveM(), tr)
		}
	default:
		panic(fmt.Errorf("no alpha formulation for attractive term %d", int(at)))
	}
	return
}

// DiffAlphaT returns dAlpha/dT. The Soave-form terms have an analytic
// derivative; the remaining correlations use a central difference.
func (at AttractiveTerm) DiffAlphaT(c *component.Component, T, salinity float64) (dadT float64) {
	switch at {
	case AtractiveSrk:
		dadT = soaveDiffAlphaT(c.SoaveM(), T, c.TC)
	case AtractivePr:
		dadT = soaveDiffAlphaT(c.PrM(), T, c.TC)
	case AtractivePr1978:
		dadT = soaveDiffAlphaT(c.Pr78M(), T, c.TC)
	default:
		h := 1.0e-4 * T
		dadT = (at.Alpha(c, T+h, salinity) - at.Alpha(c, T-h, salinity)) / (2 * h)
	}
	return
}

func soaveAlpha(m, tr float64) float64 {
	f := 1 + m*(1-math.Sqrt(tr))
	return f * f
}

func soaveDiffAlphaT(m, T, TC float64) float64 {
	sqTr := math.Sqrt(T / TC)
	return -m * (1 + m*(1-sqTr)) / math.Sqrt(T*TC)
}

func mathiasCopemanAlpha(c *component.Component, tr, fallbackM float64) float64 {
	if len(c.MathiasCopeman) != 3 {
		return soaveAlpha(fallbackM, tr)
	}
	var (
		s = 1 - math.Sqrt(tr)
		p = c.MathiasCopeman
	)
	if tr > 1 {
		// Above the critical point only the linear term is kept.
		f := 1 + p[0]*s
		return f * f
	}
	f := 1 + p[0]*s + p[1]*s*s + p[2]*s*s*s
	return f * f
}

// twuGeneralizedAlpha is the Twu (1995) generalized correlation for the
// SRK family, interpolated in the acentric factor.
func twuGeneralizedAlpha(w, tr float64) float64 {
	var a0, a1 float64
	if tr <= 1 {
		a0 = math.Pow(tr, -0.171813) * math.Exp(0.125283*(1-math.Pow(tr, 1.77634)))
		a1 = math.Pow(tr, -0.607352) * math.Exp(0.511614*(1-math.Pow(tr, 2.20517)))
	} else {
		a0 = math.Pow(tr, -0.792615) * math.Exp(0.401219*(1-math.Pow(tr, -0.992615)))
		a1 = math.Pow(tr, -1.984471) * math.Exp(0.024955*(1-math.Pow(tr, -9.98471)))
	}
	return a0 + w*(a1-a0)
}

func twuParamAlpha(L, M, N, tr float64) float64 {
	return math.Pow(tr, N*(M-1)) * math.Exp(L*(1-math.Pow(tr, N*M)))
}

// soreideWhitsonAlpha is the salinity corrected water alpha of Soreide and
// Whitson (1992). salinity is NaCl molality.
func soreideWhitsonAlpha(tr, salinity float64) float64 {
	cs := math.Pow(salinity, 1.1)
	f := 1 + 0.4530*(1-tr*(1-0.0103*cs)) + 0.0034*(math.Pow(tr, -3)-1)
	return f * f
}
