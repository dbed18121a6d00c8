package mixingrule

import (
	"math"

	"github.com/james-bowman/sparse"

	"github.com/equinor/gothermo/thermo/component"
)

// defaultKij carries the built-in binary interaction parameters, keyed by
// component name pairs in either order. Values are the SRK-family set used
// for natural gas fluids.
var defaultKij = map[[2]string]float64{
	{"CO2", "methane"}:      0.120,
	{"CO2", "ethane"}:       0.130,
	{"CO2", "propane"}:      0.135,
	{"CO2", "n-butane"}:     0.130,
	{"CO2", "nitrogen"}:     -0.020,
	{"H2S", "methane"}:      0.080,
	{"H2S", "ethane"}:       0.085,
	{"H2S", "CO2"}:          0.099,
	{"nitrogen", "methane"}: 0.020,
	{"nitrogen", "ethane"}:  0.060,
	{"water", "methane"}:    0.485,
	{"water", "ethane"}:     0.490,
	{"water", "CO2"}:        0.190,
	{"water", "nitrogen"}:   0.480,
	{"water", "H2S"}:        0.105,
	{"methanol", "methane"}: 0.215,
	{"MEG", "methane"}:      0.180,
}

// ClassicVdW is the van der Waals one-fluid rule:
// a = sum_i sum_j x_i x_j sqrt(a_i a_j) (1 - k_ij), b = sum_i x_i b_i.
// The interaction parameters live in a sparse DOK since only a handful of
// component pairs carry a nonzero k_ij.
type ClassicVdW struct {
	kij    *sparse.DOK
	n      int
	useKij bool
}

func newClassic(n int, useKij bool) (c *ClassicVdW) {
	if n < 1 {
		n = 1
	}
	c = &ClassicVdW{
		kij:    sparse.NewDOK(n, n),
		n:      n,
		useKij: useKij,
	}
	return
}

func (c *ClassicVdW) loadDefaults(comps []*component.Component) {
	for i := range comps {
		for j := i + 1; j < len(comps); j++ {
			if k, ok := defaultKij[[2]string{comps[i].Name, comps[j].Name}]; ok {
				c.SetBinary(i, j, k)
			} else if k, ok = defaultKij[[2]string{comps[j].Name, comps[i].Name}]; ok {
				c.SetBinary(i, j, k)
			}
		}
	}
}

func (c *ClassicVdW) Name() string {
	if c.useKij {
		return "classic"
	}
	return "no (kij=0)"
}

// SetBinary stores a symmetric interaction parameter. The store grows on
// demand when components were added after construction.
func (c *ClassicVdW) SetBinary(i, j int, kij float64) {
	if m := max(i, j) + 1; m > c.n {
		grown := sparse.NewDOK(m, m)
		c.kij.DoNonZero(func(r, cc int, v float64) {
			grown.Set(r, cc, v)
		})
		c.kij = grown
		c.n = m
	}
	c.kij.Set(i, j, kij)
	c.kij.Set(j, i, kij)
	c.useKij = true
}

func (c *ClassicVdW) Binary(i, j int) float64 {
	if !c.useKij || i >= c.n || j >= c.n {
		return 0
	}
	return c.kij.At(i, j)
}

func (c *ClassicVdW) aij(i, j int, comps []*component.Component) float64 {
	return math.Sqrt(comps[i].AEos*comps[j].AEos) * (1 - c.Binary(i, j))
}

func (c *ClassicVdW) AMix(comps []*component.Component, T float64) (am float64) {
	for i := range comps {
		for j := range comps {
			am += comps[i].X * comps[j].X * c.aij(i, j, comps)
		}
	}
	return
}

func (c *ClassicVdW) BMix(comps []*component.Component) (bm float64) {
	for _, comp := range comps {
		bm += comp.X * comp.BEos
	}
	return
}

func (c *ClassicVdW) ASum(i int, comps []*component.Component) (sum float64) {
	for j := range comps {
		sum += comps[j].X * c.aij(i, j, comps)
	}
	return
}

func (c *ClassicVdW) Clone() EosMixingRule {
	cc := newClassic(c.n, c.useKij)
	c.kij.DoNonZero(func(r, col int, v float64) {
		cc.kij.Set(r, col, v)
	})
	return cc
}
