package phase

import (
	"math"
)

// Main-group interaction parameters a_mk in K, published UNIFAC VLE table.
// Each database component maps to one main group (component.Data
// UnifacMainGroup); components without a group are treated as inert
// (gamma = 1 contribution from the residual part).
var unifacA = map[[2]string]float64{
	{"CH2", "H2O"}:   1318.0,
	{"H2O", "CH2"}:   300.0,
	{"CH2", "OH"}:    986.5,
	{"OH", "CH2"}:    156.4,
	{"OH", "H2O"}:    353.5,
	{"H2O", "OH"}:    -229.1,
	{"CH3OH", "H2O"}: -181.0,
	{"H2O", "CH3OH"}: 289.6,
	{"CH2", "CH3OH"}: 697.2,
	{"CH3OH", "CH2"}: 16.51,
	{"CH3OH", "OH"}:  249.1,
	{"OH", "CH3OH"}:  -137.1,
	{"CO2", "H2O"}:   497.5,
	{"H2O", "CO2"}:   -38.67,
	{"CH2", "CO2"}:   110.1,
	{"CO2", "CH2"}:   117.0,
}

// PhaseGEUnifac is the UNIFAC activity phase, reduced to one structural
// group per molecule: the combinatorial part uses the component r and q,
// the residual part the main-group interaction table above.
type PhaseGEUnifac struct {
	PhaseGE
}

func NewPhaseGEUnifac() (p *PhaseGEUnifac) {
	p = &PhaseGEUnifac{
		PhaseGE: PhaseGE{modelName: "UNIFAC-GE-model"},
	}
	return
}

func (p *PhaseGEUnifac) psi(gi, gj string) float64 {
	if gi == gj || gi == "" || gj == "" {
		return 1
	}
	a, ok := unifacA[[2]string{gi, gj}]
	if !ok {
		return 1
	}
	return math.Exp(-a / p.temp)
}

func (p *PhaseGEUnifac) ActivityCoefficients() (gamma []float64) {
	const z = 10.0
	var (
		n     = len(p.comps)
		sumXR float64
		sumXQ float64
		sumXL float64
		l     = make([]float64, n)
		theta = make([]float64, n)
	)
	gamma = make([]float64, n)
	for i, c := range p.comps {
		r, q := c.UnifacR, c.UnifacQ
		if r == 0 {
			r, q = 1, 1
		}
		l[i] = z/2*(r-q) - (r - 1)
		sumXR += c.X * r
		sumXQ += c.X * q
		sumXL += c.X * l[i]
	}
	for i, c := range p.comps {
		q := c.UnifacQ
		if q == 0 {
			q = 1
		}
		theta[i] = c.X * q / sumXQ
	}
	for i, c := range p.comps {
		r, q := c.UnifacR, c.UnifacQ
		if r == 0 {
			r, q = 1, 1
		}
		var (
			phi = c.X * r / sumXR
			lnc float64
		)
		if c.X > 0 {
			lnc = math.Log(phi/c.X) + z/2*q*math.Log(theta[i]/phi) + l[i] - phi/c.X*sumXL
		}
		// Residual part over the single-group representation.
		var sumTP float64
		for j, cj := range p.comps {
			sumTP += theta[j] * p.psi(cj.UnifacMainGroup, c.UnifacMainGroup)
		}
		lnr := q * (1 - math.Log(sumTP))
		for j, cj := range p.comps {
			var den float64
			for k, ck := range p.comps {
				den += theta[k] * p.psi(ck.UnifacMainGroup, cj.UnifacMainGroup)
			}
			lnr -= q * theta[j] * p.psi(c.UnifacMainGroup, cj.UnifacMainGroup) / den
		}
		gamma[i] = math.Exp(lnc + lnr)
	}
	return
}

func (p *PhaseGEUnifac) Clone() PhaseInterface {
	cc := NewPhaseGEUnifac()
	p.cloneInto(&cc.Phase)
	return cc
}
