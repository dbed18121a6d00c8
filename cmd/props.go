/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/equinor/gothermo/fluidparams"
	"github.com/equinor/gothermo/thermo/phase"
	"github.com/equinor/gothermo/thermo/system"
)

type PropsRun struct {
	FluidFile string
	Phase     string
	Profile   bool
}

// PropsCmd represents the props command
var PropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Build a fluid system from a YAML deck and evaluate phase properties",
	Long: `
Builds the fluid system named in the input deck, adds the components and
salts, applies the model flags and prints compressibility, density and
fugacity coefficients per phase slot,

gothermo props -F fluid.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		pr := &PropsRun{}
		if pr.FluidFile, err = cmd.Flags().GetString("fluidFile"); err != nil {
			panic(err)
		}
		pr.Phase, _ = cmd.Flags().GetString("phase")
		pr.Profile, _ = cmd.Flags().GetBool("profile")
		fd := processDeck(pr)
		RunProps(pr, fd)
	},
}

func processDeck(pr *PropsRun) (fd *fluidparams.FluidDeck) {
	var (
		err error
	)
	if len(pr.FluidFile) == 0 {
		err = fmt.Errorf("must supply a fluid deck (-F, --fluidFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Lean Gas"
Model: SRK-Peneloux
Temperature: 298.15
Pressure: 10.
Components:
  methane: 0.9
  ethane: 0.08
  CO2: 0.02
VolumeCorrection: true
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(pr.FluidFile); err != nil {
		panic(err)
	}
	fd = &fluidparams.FluidDeck{}
	if err = fd.Parse(data); err != nil {
		panic(err)
	}
	fd.Print()
	return
}

func init() {
	rootCmd.AddCommand(PropsCmd)
	PropsCmd.Flags().StringP("fluidFile", "F", "", "YAML fluid deck with model, state point and composition")
	PropsCmd.Flags().StringP("phase", "p", "", "restrict output to one slot: gas, liquid, aqueous, solid or hydrate")
	PropsCmd.Flags().Bool("profile", false, "write a CPU profile of the property evaluation")
}

// BuildSystem assembles the fluid system described by the deck.
func BuildSystem(fd *fluidparams.FluidDeck) (s system.SystemInterface, err error) {
	s = system.NewSystem(fd.Model, fd.Temperature, fd.Pressure)
	if fd.Title != "" {
		s.SetFluidName(fd.Title)
	}
	for _, name := range fd.ComponentNames() {
		if err = s.AddComponent(name, fd.Components[name]); err != nil {
			return
		}
	}
	for _, name := range fd.SaltNames() {
		if err = s.AddSalt(name, fd.Salts[name]); err != nil {
			return
		}
	}
	if fd.MixingRule != 0 {
		s.SetMixingRule(fd.MixingRule)
	}
	s.UseVolumeCorrection(fd.VolumeCorrection)
	s.SetSolidPhaseCheck(fd.SolidCheck)
	s.SetHydrateCheck(fd.HydrateCheck)
	for _, bp := range fd.Kij {
		if err = s.SetBinaryInteractionParameter(bp.Pair[0], bp.Pair[1], bp.Value); err != nil {
			return
		}
	}
	err = s.Init(1)
	return
}

func RunProps(pr *PropsRun, fd *fluidparams.FluidDeck) {
	if pr.Profile {
		defer profile.Start().Stop()
	}
	s, err := BuildSystem(fd)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("[%s]\t\t= System Model\n", s.ModelName())
	if s.Salinity() > 0 {
		fmt.Printf("%8.5f\t\t= Salinity [mol/kg water]\n", s.Salinity())
	}
	for i := 0; i < s.MaxNumberOfPhases(); i++ {
		p := s.Phase(i)
		if p == nil {
			continue
		}
		if pr.Phase != "" && p.Type() != phase.NewPhaseType(pr.Phase) {
			continue
		}
		fmt.Printf("--- slot %d: %s (%s)\n", i, p.Type(), p.ModelName())
		fmt.Printf("%12.6f\t= Z\n", p.Z())
		fmt.Printf("%12.6g\t= Molar Volume [m3/mol]\n", p.MolarVolume())
		fmt.Printf("%12.4f\t= Density [kg/m3]\n", p.Density())
		phi := p.FugacityCoefficients()
		for j, c := range p.Components() {
			fmt.Printf("phi[%s] = %v\n", c.Name, phi[j])
		}
	}
}
