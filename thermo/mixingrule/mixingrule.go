// Package mixingrule composes pure-component EOS parameters into mixture
// parameters. Rule numbers follow the original model configuration:
// 1 = classic without interaction parameters, 2 = classic with binary
// interaction parameters, 4 = Huron-Vidal.
package mixingrule

import (
	"fmt"

	"github.com/equinor/gothermo/thermo/component"
)

type EosMixingRule interface {
	Name() string
	// AMix combines the alpha-scaled pure component a parameters
	// (component.AEos) into the mixture a.
	AMix(comps []*component.Component, T float64) float64
	// BMix combines the covolumes.
	BMix(comps []*component.Component) float64
	// ASum is sum_j x_j a_ij for the fugacity coefficient closed form.
	ASum(i int, comps []*component.Component) float64
	SetBinary(i, j int, kij float64)
	Binary(i, j int) float64
	Clone() EosMixingRule
}

// New builds a mixing rule from its configuration number. The component
// slice is used to preload database interaction parameters for rule 2.
func New(number int, comps []*component.Component) (mr EosMixingRule) {
	switch number {
	case 1:
		mr = newClassic(len(comps), false)
	case 2:
		c := newClassic(len(comps), true)
		c.loadDefaults(comps)
		mr = c
	case 4:
		hv := NewHuronVidal(len(comps), HVLambdaSrk)
		hv.loadDefaults(comps)
		mr = hv
	default:
		panic(fmt.Errorf("unable to use mixing rule number %d", number))
	}
	return
}
