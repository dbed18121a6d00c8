package fluidparams

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Fluid definition obtained from the YAML input deck
type FluidDeck struct {
	Title            string             `yaml:"Title"`
	Model            string             `yaml:"Model"`
	Temperature      float64            `yaml:"Temperature"` // [K]
	Pressure         float64            `yaml:"Pressure"`    // [bara]
	Components       map[string]float64 `yaml:"Components"`  // name -> moles
	Salts            map[string]float64 `yaml:"Salts"`       // formula -> moles
	MixingRule       int                `yaml:"MixingRule"`
	Kij              []BinaryParam      `yaml:"Kij"`
	VolumeCorrection bool               `yaml:"VolumeCorrection"`
	SolidCheck       bool               `yaml:"SolidCheck"`
	HydrateCheck     bool               `yaml:"HydrateCheck"`
}

// Binary interaction override for one component pair
type BinaryParam struct {
	Pair  [2]string `yaml:"Pair"`
	Value float64   `yaml:"Value"`
}

func (fd *FluidDeck) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, fd); err != nil {
		return err
	}
	return fd.validate()
}

func (fd *FluidDeck) validate() error {
	if fd.Model == "" {
		return fmt.Errorf("fluid deck is missing the Model field")
	}
	if fd.Temperature <= 0 {
		return fmt.Errorf("fluid deck temperature must be positive, got %v", fd.Temperature)
	}
	if fd.Pressure <= 0 {
		return fmt.Errorf("fluid deck pressure must be positive, got %v", fd.Pressure)
	}
	if len(fd.Components) == 0 {
		return fmt.Errorf("fluid deck defines no components")
	}
	for name, moles := range fd.Components {
		if moles < 0 {
			return fmt.Errorf("component %s has negative moles %v", name, moles)
		}
	}
	for _, bp := range fd.Kij {
		if bp.Pair[0] == "" || bp.Pair[1] == "" {
			return fmt.Errorf("Kij entry is missing a component name")
		}
	}
	return nil
}

// ComponentNames returns the deck components in sorted order so the
// fluid is assembled deterministically.
func (fd *FluidDeck) ComponentNames() (names []string) {
	names = make([]string, 0, len(fd.Components))
	for k := range fd.Components {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

// SaltNames returns the deck salts in sorted order.
func (fd *FluidDeck) SaltNames() (names []string) {
	names = make([]string, 0, len(fd.Salts))
	for k := range fd.Salts {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func (fd *FluidDeck) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", fd.Title)
	fmt.Printf("[%s]\t\t= Model\n", fd.Model)
	fmt.Printf("%8.3f\t\t= Temperature [K]\n", fd.Temperature)
	fmt.Printf("%8.3f\t\t= Pressure [bara]\n", fd.Pressure)
	for _, name := range fd.ComponentNames() {
		fmt.Printf("Components[%s] = %v\n", name, fd.Components[name])
	}
	for _, name := range fd.SaltNames() {
		fmt.Printf("Salts[%s] = %v\n", name, fd.Salts[name])
	}
	if fd.MixingRule != 0 {
		fmt.Printf("[%d]\t\t\t= Mixing Rule\n", fd.MixingRule)
	}
	for _, bp := range fd.Kij {
		fmt.Printf("Kij[%s/%s] = %v\n", bp.Pair[0], bp.Pair[1], bp.Value)
	}
	fmt.Printf("[%t]\t\t\t= Volume Correction\n", fd.VolumeCorrection)
	fmt.Printf("[%t]\t\t\t= Solid Check\n", fd.SolidCheck)
	fmt.Printf("[%t]\t\t\t= Hydrate Check\n", fd.HydrateCheck)
}
