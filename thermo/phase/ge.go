package phase

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/equinor/gothermo/thermo"
)

// ActivityModel is implemented by the GE phases.
type ActivityModel interface {
	PhaseInterface
	ActivityCoefficients() []float64
}

// PhaseGE is the base of the activity-coefficient phases. GE systems pair
// an EOS gas phase with one of these in the liquid slot; the activity
// model supplies the liquid-phase non-ideality while the standard-state
// fugacity is left to the external core.
type PhaseGE struct {
	Phase
	modelName string
}

func (p *PhaseGE) ModelName() string { return p.modelName }

func (p *PhaseGE) ActivityCoefficients() (gamma []float64) {
	gamma = make([]float64, len(p.comps))
	for i := range gamma {
		gamma[i] = 1.0
	}
	return
}

func (p *PhaseGE) Clone() PhaseInterface {
	cc := &PhaseGE{modelName: p.modelName}
	p.cloneInto(&cc.Phase)
	return cc
}

// rackettLiquidVolume estimates the saturated liquid molar volume from the
// Rackett equation, m3/mol.
func rackettLiquidVolume(tc, pcBar, zra, T float64) float64 {
	tr := T / tc
	if tr > 0.99 {
		tr = 0.99
	}
	ex := 1 + math.Pow(1-tr, 2.0/7.0)
	return thermo.R * tc / (pcBar * thermo.BarToPa) * math.Pow(zra, ex)
}

// PhaseGENRTL is the NRTL activity phase.
type PhaseGENRTL struct {
	PhaseGE
	dg  *mat.Dense // interaction energies dg_ij, J/mol
	alp *mat.Dense // non-randomness alpha_ij
}

func NewPhaseGENRTL() (p *PhaseGENRTL) {
	p = &PhaseGENRTL{
		PhaseGE: PhaseGE{modelName: "NRTL-GE-model"},
		dg:      mat.NewDense(1, 1, nil),
		alp:     mat.NewDense(1, 1, nil),
	}
	return
}

// SetNRTLParameter stores the directional interaction energies (J/mol) and
// the shared non-randomness parameter for a component pair.
func (p *PhaseGENRTL) SetNRTLParameter(i, j int, dgij, dgji, alpha float64) {
	p.dg, p.alp = growPair(p.dg, p.alp, max(i, j)+1)
	p.dg.Set(i, j, dgij)
	p.dg.Set(j, i, dgji)
	p.alp.Set(i, j, alpha)
	p.alp.Set(j, i, alpha)
}

func growPair(a, b *mat.Dense, n int) (*mat.Dense, *mat.Dense) {
	r, _ := a.Dims()
	if n <= r {
		return a, b
	}
	ga := mat.NewDense(n, n, nil)
	gb := mat.NewDense(n, n, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			ga.Set(i, j, a.At(i, j))
			gb.Set(i, j, b.At(i, j))
		}
	}
	return ga, gb
}

func (p *PhaseGENRTL) tauG(i, j int) (tau, G float64) {
	r, _ := p.dg.Dims()
	if i >= r || j >= r {
		return 0, 1
	}
	tau = p.dg.At(j, i) / (thermo.R * p.temp)
	G = math.Exp(-p.alp.At(j, i) * tau)
	return
}

func (p *PhaseGENRTL) ActivityCoefficients() (gamma []float64) {
	gamma = make([]float64, len(p.comps))
	for i := range p.comps {
		var (
			num, den float64
		)
		for j := range p.comps {
			tau, G := p.tauG(j, i)
			num += p.comps[j].X * tau * G
			den += p.comps[j].X * G
		}
		lng := 0.0
		if den > 0 {
			lng = num / den
		}
		for j := range p.comps {
			var (
				numj, denj float64
			)
			for k := range p.comps {
				tau, G := p.tauG(k, j)
				numj += p.comps[k].X * tau * G
				denj += p.comps[k].X * G
			}
			tauij, Gij := p.tauG(i, j)
			if denj > 0 {
				lng += p.comps[j].X * Gij / denj * (tauij - numj/denj)
			}
		}
		gamma[i] = math.Exp(lng)
	}
	return
}

func (p *PhaseGENRTL) Clone() PhaseInterface {
	cc := NewPhaseGENRTL()
	p.cloneInto(&cc.Phase)
	cc.dg = mat.DenseCopyOf(p.dg)
	cc.alp = mat.DenseCopyOf(p.alp)
	return cc
}

// PhaseGEWilson is the Wilson activity phase. The volume ratios of the
// Wilson Lambda come from the Rackett liquid volume.
type PhaseGEWilson struct {
	PhaseGE
	lam *mat.Dense // interaction energies lambda_ij - lambda_ii, J/mol
}

func NewPhaseGEWilson() (p *PhaseGEWilson) {
	p = &PhaseGEWilson{
		PhaseGE: PhaseGE{modelName: "Wilson-GE-model"},
		lam:     mat.NewDense(1, 1, nil),
	}
	return
}

// SetWilsonParameter stores the directional interaction energies, J/mol.
func (p *PhaseGEWilson) SetWilsonParameter(i, j int, lij, lji float64) {
	p.lam, _ = growPair(p.lam, p.lam, max(i, j)+1)
	p.lam.Set(i, j, lij)
	p.lam.Set(j, i, lji)
}

func (p *PhaseGEWilson) bigLambda(i, j int) float64 {
	if i == j {
		return 1
	}
	var (
		ci = p.comps[i]
		cj = p.comps[j]
		vi = rackettLiquidVolume(ci.TC, ci.PC, ci.RacketCompressibility(), p.temp)
		vj = rackettLiquidVolume(cj.TC, cj.PC, cj.RacketCompressibility(), p.temp)
	)
	var lij float64
	if r, _ := p.lam.Dims(); i < r && j < r {
		lij = p.lam.At(i, j)
	}
	return vj / vi * math.Exp(-lij/(thermo.R*p.temp))
}

func (p *PhaseGEWilson) ActivityCoefficients() (gamma []float64) {
	gamma = make([]float64, len(p.comps))
	for i := range p.comps {
		var sumI float64
		for j := range p.comps {
			sumI += p.comps[j].X * p.bigLambda(i, j)
		}
		lng := 1 - math.Log(sumI)
		for k := range p.comps {
			var sumK float64
			for j := range p.comps {
				sumK += p.comps[j].X * p.bigLambda(k, j)
			}
			lng -= p.comps[k].X * p.bigLambda(k, i) / sumK
		}
		gamma[i] = math.Exp(lng)
	}
	return
}

func (p *PhaseGEWilson) Clone() PhaseInterface {
	cc := NewPhaseGEWilson()
	p.cloneInto(&cc.Phase)
	cc.lam = mat.DenseCopyOf(p.lam)
	return cc
}
