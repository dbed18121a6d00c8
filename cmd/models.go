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

	"github.com/spf13/cobra"

	"github.com/equinor/gothermo/thermo"
	"github.com/equinor/gothermo/thermo/system"
)

// ModelsCmd represents the models command
var ModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available thermodynamic system models",
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		for _, label := range system.ModelNames() {
			if !verbose {
				fmt.Println(label)
				continue
			}
			s := system.NewSystem(label, thermo.ReferenceTemperature, thermo.ReferencePressure)
			fmt.Printf("%-18s -> %s (attractive term %d)\n",
				label, s.ModelName(), s.AttractiveTermNumber())
		}
	},
}

func init() {
	rootCmd.AddCommand(ModelsCmd)
	ModelsCmd.Flags().BoolP("verbose", "v", false, "show the full model name and attractive term per label")
}
