package component

import (
	"math"
)

// Data is an immutable component record from the component database.
// Units: molar mass kg/mol, critical temperature K, critical pressure bara,
// normal boiling point K.
type Data struct {
	Name               string    `json:"name"`
	Formula            string    `json:"formula"`
	CASNumber          string    `json:"casNumber"`
	MolarMass          float64   `json:"molarMass"`
	TC                 float64   `json:"tc"`
	PC                 float64   `json:"pc"`
	AcentricFactor     float64   `json:"acentricFactor"`
	NormalBoilingPoint float64   `json:"normalBoilingPoint"`
	RacketZ            float64   `json:"racketZ"`
	Charge             float64   `json:"charge"`
	UnifacR            float64   `json:"unifacR"`
	UnifacQ            float64   `json:"unifacQ"`
	UnifacMainGroup    string    `json:"unifacMainGroup"`
	MathiasCopeman     []float64 `json:"mathiasCopeman"` // c1, c2, c3 (SRK form)
	TwuCoon            []float64 `json:"twuCoon"`        // L, M, N
}

// IsIon reports whether the component is an ionic species.
func (d Data) IsIon() bool {
	return d.Charge != 0
}

// RacketCompressibility returns the Racket Z used by the Peneloux volume
// shift, falling back to the Soave correlation when the database carries
// no value.
func (d Data) RacketCompressibility() (zra float64) {
	zra = d.RacketZ
	if zra == 0 {
		zra = 0.29056 - 0.08775*d.AcentricFactor
	}
	return
}

// Component is one component inside a phase: the database record plus the
// mole bookkeeping and the per-component EOS state refreshed by the phase
// on Init.
type Component struct {
	Data
	ComponentNumber int

	NumberOfMoles float64 // total moles of this component in the system
	MolesInPhase  float64
	X             float64 // mole fraction in phase

	// Cubic EOS state, SI units (a in Pa m6/mol2, b in m3/mol).
	AEos  float64
	BEos  float64
	Alpha float64
}

// NewComponent wraps a database record for use in a phase.
func NewComponent(d Data, number int, moles float64) (c *Component) {
	c = &Component{
		Data:            d,
		ComponentNumber: number,
		NumberOfMoles:   moles,
		MolesInPhase:    moles,
	}
	return
}

// Tr returns the reduced temperature.
func (c *Component) Tr(T float64) float64 {
	return T / c.TC
}

// Pr returns the reduced pressure for a pressure in bara.
func (c *Component) Pr(P float64) float64 {
	return P / c.PC
}

// SoaveM is the acentric-factor polynomial of the SRK alpha function.
func (c *Component) SoaveM() float64 {
	w := c.AcentricFactor
	return 0.480 + 1.574*w - 0.176*w*w
}

// PrM is the acentric-factor polynomial of the PR-1976 alpha function.
func (c *Component) PrM() float64 {
	w := c.AcentricFactor
	return 0.37464 + 1.54226*w - 0.26992*w*w
}

// Pr78M is the PR-1978 polynomial with the heavy-component branch.
func (c *Component) Pr78M() float64 {
	w := c.AcentricFactor
	if w > 0.49 {
		return 0.379642 + 1.48503*w - 0.164423*w*w + 0.016666*w*w*w
	}
	return c.PrM()
}

// Clone returns a deep copy. Parameter slices in Data are shared; they are
// never mutated after database load.
func (c *Component) Clone() (cc *Component) {
	cp := *c
	cc = &cp
	return
}

// AddMoles adjusts the phase and total mole counts.
func (c *Component) AddMoles(dn float64) {
	c.NumberOfMoles += dn
	c.MolesInPhase += dn
	if c.NumberOfMoles < 0 || math.IsNaN(dn) {
		panic("negative number of moles for component " + c.Name)
	}
}
