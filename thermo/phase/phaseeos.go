package phase

import (
	"fmt"
	"math"

	"github.com/equinor/gothermo/thermo"
	"github.com/equinor/gothermo/thermo/mixingrule"
)

// PhaseEos is the cubic EOS core shared by the SRK, RK, PR and TST phase
// families:
//
//	P = RT/(v-b) - a/((v + delta1 b)(v + delta2 b))
//
// Concrete phases set the omega constants and the root-structure deltas;
// the attractive term number selects the alpha function.
type PhaseEos struct {
	Phase
	modelName      string
	OmegaA, OmegaB float64
	Delta1, Delta2 float64

	// Peneloux shift constants c = k0 (k1 - ZRA) R Tc / Pc.
	penelouxK0, penelouxK1 float64

	mixNumber int
	mix       mixingrule.EosMixingRule
	mixComps  int

	// State from the last Init.
	aMix, bMix float64
	bigA, bigB float64
	z          float64
	molarVol   float64
	inited     bool
}

func newPhaseEos(name string, omegaA, omegaB, delta1, delta2, penK0, penK1 float64) (p *PhaseEos) {
	p = &PhaseEos{
		modelName:  name,
		OmegaA:     omegaA,
		OmegaB:     omegaB,
		Delta1:     delta1,
		Delta2:     delta2,
		penelouxK0: penK0,
		penelouxK1: penK1,
		mixNumber:  2,
	}
	return
}

func (p *PhaseEos) ModelName() string { return p.modelName }

// SetMixingRule selects the mixing rule number (1, 2 or 4) and drops any
// previously built rule.
func (p *PhaseEos) SetMixingRule(number int) {
	p.mixNumber = number
	p.mix = nil
	p.mixComps = 0
}

// MixingRule exposes the active rule so interaction parameters can be set.
// The rule is built on first use and rebuilt when components were added
// since.
func (p *PhaseEos) MixingRule() mixingrule.EosMixingRule {
	if p.mix == nil || p.mixComps != len(p.comps) {
		p.mix = mixingrule.New(p.mixNumber, p.comps)
		p.mixComps = len(p.comps)
	}
	return p.mix
}

// Init refreshes the pure-component parameters, the mixture parameters and
// the compressibility root for the current T, P and composition.
func (p *PhaseEos) Init() (err error) {
	var (
		T = p.temp
		P = p.pres * thermo.BarToPa
	)
	if T <= 0 || p.pres <= 0 {
		return fmt.Errorf("%s phase: non-positive temperature or pressure (T=%g K, P=%g bara)", p.modelName, T, p.pres)
	}
	if len(p.comps) == 0 {
		return fmt.Errorf("%s phase: no components", p.modelName)
	}
	for _, c := range p.comps {
		pc := c.PC * thermo.BarToPa
		c.Alpha = p.attractiveTerm.Alpha(c, T, p.molality)
		c.BEos = p.OmegaB * thermo.R * c.TC / pc
		c.AEos = p.OmegaA * thermo.R * thermo.R * c.TC * c.TC / pc * c.Alpha
	}
	mr := p.MixingRule()
	p.aMix = mr.AMix(p.comps, T)
	p.bMix = mr.BMix(p.comps)
	p.bigA = p.aMix * P / (thermo.R * thermo.R * T * T)
	p.bigB = p.bMix * P / (thermo.R * T)
	if p.z, err = p.solveZ(); err != nil {
		return
	}
	p.molarVol = p.z * thermo.R * T / P
	p.inited = true
	return
}

// solveZ selects the compressibility root for the phase type: largest real
// root for gas, smallest root above the covolume otherwise.
func (p *PhaseEos) solveZ() (z float64, err error) {
	var (
		d1, d2 = p.Delta1, p.Delta2
		A, B   = p.bigA, p.bigB
	)
	c2 := (d1+d2-1)*B - 1
	c1 := A + d1*d2*B*B - (d1+d2)*B*(B+1)
	c0 := -(A*B + d1*d2*B*B*(B+1))
	roots := solveCubic(c2, c1, c0)
	z = math.NaN()
	if p.phaseType == Gas {
		for _, r := range roots {
			if r > B && (math.IsNaN(z) || r > z) {
				z = r
			}
		}
	} else {
		for _, r := range roots {
			if r > B && (math.IsNaN(z) || r < z) {
				z = r
			}
		}
	}
	if math.IsNaN(z) {
		err = fmt.Errorf("%s phase: no compressibility root above B=%g", p.modelName, B)
	}
	return
}

// solveCubic returns the real roots of z^3 + a z^2 + b z + c using the
// trigonometric form of Cardano's method.
func solveCubic(a, b, c float64) (roots []float64) {
	var (
		q = (a*a - 3*b) / 9
		r = (2*a*a*a - 9*a*b + 27*c) / 54
	)
	if r*r < q*q*q {
		th := math.Acos(r / math.Sqrt(q*q*q))
		sq := -2 * math.Sqrt(q)
		roots = []float64{
			sq*math.Cos(th/3) - a/3,
			sq*math.Cos((th+2*math.Pi)/3) - a/3,
			sq*math.Cos((th-2*math.Pi)/3) - a/3,
		}
		return
	}
	e := math.Cbrt(math.Abs(r) + math.Sqrt(r*r-q*q*q))
	if r > 0 {
		e = -e
	}
	var f float64
	if e != 0 {
		f = q / e
	}
	roots = []float64{e + f - a/3}
	return
}

func (p *PhaseEos) Z() float64 {
	if !p.inited {
		return 1.0
	}
	return p.z
}

// MolarVolume returns the EOS molar volume, shifted by the Peneloux
// translation when volume correction is switched on. The shift never
// enters the fugacity coefficients.
func (p *PhaseEos) MolarVolume() (v float64) {
	if !p.inited {
		return p.Phase.MolarVolume()
	}
	v = p.molarVol
	if p.volCorrection {
		v -= p.penelouxShift()
	}
	return
}

func (p *PhaseEos) penelouxShift() (c float64) {
	for _, comp := range p.comps {
		ci := p.penelouxK0 * (p.penelouxK1 - comp.RacketCompressibility()) *
			thermo.R * comp.TC / (comp.PC * thermo.BarToPa)
		c += comp.X * ci
	}
	return
}

func (p *PhaseEos) Density() (rho float64) {
	v := p.MolarVolume()
	if v <= 0 {
		log.Warnf("%s phase: non-positive molar volume", p.modelName)
		return 0
	}
	rho = p.MolarMass() / v
	return
}

// FugacityCoefficients evaluates the cubic closed form ln phi_i. Under a
// Huron-Vidal rule the GE form replaces the quadratic composition
// derivative.
func (p *PhaseEos) FugacityCoefficients() (phi []float64) {
	if !p.inited {
		return p.Phase.FugacityCoefficients()
	}
	var (
		T       = p.temp
		Z, A, B = p.z, p.bigA, p.bigB
		d1, d2  = p.Delta1, p.Delta2
		lnRat   = math.Log((Z + d1*B) / (Z + d2*B))
		mr      = p.MixingRule()
	)
	phi = make([]float64, len(p.comps))
	hv, isHV := mr.(*mixingrule.HuronVidal)
	for i, c := range p.comps {
		bRatio := c.BEos / p.bMix
		lnphi := bRatio*(Z-1) - math.Log(Z-B)
		if isHV {
			lnphi -= 1 / ((d1 - d2) * thermo.R * T) *
				(c.AEos/c.BEos - thermo.R*T*hv.LnGamma(i, p.comps, T)/hv.Lambda()) * lnRat
		} else {
			lnphi += A / (B * (d1 - d2)) * (bRatio - 2/p.aMix*mr.ASum(i, p.comps)) * lnRat
		}
		phi[i] = math.Exp(lnphi)
	}
	return
}

func (p *PhaseEos) cloneEosInto(dst *PhaseEos) {
	*dst = *p
	p.Phase.cloneInto(&dst.Phase)
	if p.mix != nil {
		dst.mix = p.mix.Clone()
	}
}

func (p *PhaseEos) Clone() PhaseInterface {
	cc := &PhaseEos{}
	p.cloneEosInto(cc)
	return cc
}
