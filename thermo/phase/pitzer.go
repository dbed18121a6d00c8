package phase

import (
	"math"
)

// Pitzer ion-interaction parameters for 1:1 salts at 25 C.
type pitzerParam struct {
	beta0, beta1, cPhi float64
}

var pitzerParams = map[[2]string]pitzerParam{
	{"Na+", "Cl-"}: {0.0765, 0.2664, 0.00127},
	{"K+", "Cl-"}:  {0.04835, 0.2122, -0.00084},
}

// PhaseGEPitzer is the Pitzer activity phase for aqueous electrolytes: the
// Debye-Hueckel term plus the second and third virial ion-interaction
// terms for a single dissolved salt.
type PhaseGEPitzer struct {
	PhaseGE
}

func NewPhaseGEPitzer() (p *PhaseGEPitzer) {
	p = &PhaseGEPitzer{
		PhaseGE: PhaseGE{modelName: "Pitzer-GE-model"},
	}
	p.SetType(Aqueous)
	return
}

// debyeHuckelAPhi is the osmotic Debye-Hueckel slope, fitted over
// 0-100 C for water.
func debyeHuckelAPhi(T float64) float64 {
	t := T - 273.15
	return 0.377 + 4.684e-4*t + 3.74e-6*t*t
}

// lookupSalt finds the parameter set for the cation/anion pair present in
// the phase.
func (p *PhaseGEPitzer) lookupSalt() (prm pitzerParam, ok bool) {
	var cation, anion string
	for _, c := range p.comps {
		if c.Charge > 0 {
			cation = c.Name
		} else if c.Charge < 0 {
			anion = c.Name
		}
	}
	prm, ok = pitzerParams[[2]string{cation, anion}]
	return
}

// MeanActivityCoefficient returns the mean ionic activity coefficient for
// the dissolved salt at the phase molality.
func (p *PhaseGEPitzer) MeanActivityCoefficient() (gammaPM float64) {
	var (
		m    = p.molality
		aPhi = debyeHuckelAPhi(p.temp)
	)
	gammaPM = 1.0
	if m <= 0 {
		return
	}
	prm, ok := p.lookupSalt()
	if !ok {
		log.Warnf("no Pitzer parameters for salt in %s", p.modelName)
		return
	}
	var (
		b      = 1.2
		alpha  = 2.0
		ionStr = m // 1:1 salt
		sqI    = math.Sqrt(ionStr)
		fGamma = -aPhi * (sqI/(1+b*sqI) + 2/b*math.Log(1+b*sqI))
		x      = alpha * sqI
		bGamma = 2*prm.beta0 + 2*prm.beta1/(x*x)*(1-(1+x-x*x/2)*math.Exp(-x))
		cGamma = 1.5 * prm.cPhi
	)
	gammaPM = math.Exp(fGamma + m*bGamma + m*m*cGamma)
	return
}

// ActivityCoefficients returns the mean ionic activity coefficient on the
// ion entries and unity on the solvent entries.
func (p *PhaseGEPitzer) ActivityCoefficients() (gamma []float64) {
	gamma = make([]float64, len(p.comps))
	gpm := p.MeanActivityCoefficient()
	for i, c := range p.comps {
		if c.IsIon() {
			gamma[i] = gpm
		} else {
			gamma[i] = 1.0
		}
	}
	return
}

func (p *PhaseGEPitzer) Clone() PhaseInterface {
	cc := NewPhaseGEPitzer()
	p.cloneInto(&cc.Phase)
	return cc
}
