package mixingrule

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/equinor/gothermo/thermo"
	"github.com/equinor/gothermo/thermo/component"
)

// Infinite-pressure packing constants of the Huron-Vidal rule. The SRK
// value is ln 2; the PR value follows from the PR covolume ratio.
const (
	HVLambdaSrk = 0.69314718055994531
	HVLambdaPr  = 0.62322524014023229
)

// HuronVidal replaces the quadratic a combination with a GE model evaluated
// at infinite pressure: a = b (sum_i x_i a_i/b_i - gE/lambda). The excess
// Gibbs energy uses NRTL interaction energies dg_ij and non-randomness
// alpha_ij. The covolume and the interaction-parameter store come from the
// classic rule.
type HuronVidal struct {
	ClassicVdW
	lambda float64
	dg     *mat.Dense // interaction energies dg_ij, J/mol
	alp    *mat.Dense // non-randomness alpha_ij
}

func NewHuronVidal(n int, lambda float64) (hv *HuronVidal) {
	if n < 1 {
		n = 1
	}
	hv = &HuronVidal{
		ClassicVdW: *newClassic(n, true),
		lambda:     lambda,
		dg:         mat.NewDense(n, n, nil),
		alp:        mat.NewDense(n, n, nil),
	}
	return
}

func (hv *HuronVidal) Name() string { return "Huron-Vidal" }

// SetHVParameter stores the directional NRTL energies (J/mol) and the
// shared non-randomness parameter for a component pair.
func (hv *HuronVidal) SetHVParameter(i, j int, dgij, dgji, alpha float64) {
	if m := max(i, j) + 1; m > hv.dg.RawMatrix().Rows {
		dg := mat.NewDense(m, m, nil)
		alp := mat.NewDense(m, m, nil)
		r, _ := hv.dg.Dims()
		for a := 0; a < r; a++ {
			for b := 0; b < r; b++ {
				dg.Set(a, b, hv.dg.At(a, b))
				alp.Set(a, b, hv.alp.At(a, b))
			}
		}
		hv.dg, hv.alp = dg, alp
	}
	hv.dg.Set(i, j, dgij)
	hv.dg.Set(j, i, dgji)
	hv.alp.Set(i, j, alpha)
	hv.alp.Set(j, i, alpha)
}

func (hv *HuronVidal) tauG(i, j int, T float64) (tau, G float64) {
	r, _ := hv.dg.Dims()
	if i >= r || j >= r {
		return 0, 1
	}
	tau = hv.dg.At(j, i) / (thermo.R * T)
	G = math.Exp(-hv.alp.At(j, i) * tau)
	return
}

// LnGamma is the NRTL activity coefficient used both in the a combination
// and in the Huron-Vidal fugacity closed form.
func (hv *HuronVidal) LnGamma(i int, comps []*component.Component, T float64) (lng float64) {
	var (
		num, den float64
	)
	for j := range comps {
		tau, G := hv.tauG(j, i, T)
		num += comps[j].X * tau * G
		den += comps[j].X * G
	}
	if den > 0 {
		lng = num / den
	}
	for j := range comps {
		var (
			numj, denj float64
		)
		for k := range comps {
			tau, G := hv.tauG(k, j, T)
			numj += comps[k].X * tau * G
			denj += comps[k].X * G
		}
		tauij, Gij := hv.tauG(i, j, T)
		if denj > 0 {
			lng += comps[j].X * Gij / denj * (tauij - numj/denj)
		}
	}
	return
}

// ExcessGibbsEnergy returns gE/(RT) of the NRTL model.
func (hv *HuronVidal) ExcessGibbsEnergy(comps []*component.Component, T float64) (ge float64) {
	for i := range comps {
		var (
			num, den float64
		)
		for j := range comps {
			tau, G := hv.tauG(j, i, T)
			num += comps[j].X * tau * G
			den += comps[j].X * G
		}
		if den > 0 {
			ge += comps[i].X * num / den
		}
	}
	return
}

func (hv *HuronVidal) AMix(comps []*component.Component, T float64) (am float64) {
	var (
		bm = hv.BMix(comps)
	)
	for _, c := range comps {
		if c.BEos > 0 {
			am += c.X * c.AEos / c.BEos
		}
	}
	am -= hv.ExcessGibbsEnergy(comps, T) * thermo.R * T / hv.lambda
	am *= bm
	return
}

// Lambda exposes the packing constant for the fugacity closed form.
func (hv *HuronVidal) Lambda() float64 { return hv.lambda }

func (hv *HuronVidal) Clone() EosMixingRule {
	r, _ := hv.dg.Dims()
	cc := NewHuronVidal(r, hv.lambda)
	cc.ClassicVdW = *(hv.ClassicVdW.Clone().(*ClassicVdW))
	cc.dg.Copy(hv.dg)
	cc.alp.Copy(hv.alp)
	return cc
}
