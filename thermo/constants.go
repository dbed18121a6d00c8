package thermo

// Physical constants and reference conditions shared across the phase and
// system packages. Units follow the library convention: temperature in K,
// pressure in bara, molar mass in kg/mol, molar volume in m3/mol.
const (
	R = 8.314472 // universal gas constant, J/(mol K)

	ReferenceTemperature = 273.15  // K
	ReferencePressure    = 1.01325 // bara

	Avogadro  = 6.02214076e23
	Boltzmann = 1.380649e-23
	Faraday   = 96485.3329 // C/mol

	// Conversion between the pressure unit used in EOS parameter
	// assembly (bara) and Pa.
	BarToPa = 1.0e5
)

// MaxNumberOfPhases is the phase slot capacity of a system: gas, liquid,
// aqueous, solid, hydrate and one spare slot for complex solids.
const MaxNumberOfPhases = 6
