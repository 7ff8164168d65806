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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/mantleflow/assess/InputParameters"
	"github.com/mantleflow/assess/solutions"
)

// cylinderCmd represents the cylinder command
var cylinderCmd = &cobra.Command{
	Use:   "cylinder",
	Short: "Evaluate the 2D cylindrical shell solution on a polar grid",
	Long: `
Evaluates the analytical Stokes solution for a 2D cylindrical shell on an
(r, phi) grid and reports field extrema and boundary condition residuals.

assess cylinder -I case.yaml
assess cylinder --forcing delta --bc FS --anomaly 1.5 --degree 2`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cylinder called")
		cp := processCaseInput(cmd, "cylinder")
		defer startProfile(cmd)()
		RunCylinder(cp)
	},
}

func init() {
	rootCmd.AddCommand(cylinderCmd)
	addCaseFlags(cylinderCmd)
	cylinderCmd.Flags().IntP("degree", "n", 2, "angular wave number n")
}

// addCaseFlags installs the flags shared by the cylinder and sphere commands.
func addCaseFlags(c *cobra.Command) {
	c.Flags().StringP("caseFile", "I", "", "YAML case file; when given, other flags are ignored")
	c.Flags().String("forcing", "delta", "forcing type: delta or smooth")
	c.Flags().String("bc", "FS", "boundary condition: FS, NS or NSFS (zero-slip outer, free-slip inner)")
	c.Flags().Float64("outer", 2.22, "outer shell radius")
	c.Flags().Float64("inner", 1.22, "inner shell radius")
	c.Flags().Float64("anomaly", 1.72, "anomaly radius (delta forcing)")
	c.Flags().IntP("power", "k", 0, "radial forcing power k (smooth forcing)")
	c.Flags().Float64P("magnitude", "g", 1, "forcing magnitude")
	c.Flags().Float64("nu", 1, "kinematic viscosity")
	c.Flags().Int("nr", 32, "radial grid points")
	c.Flags().Int("nangular", 64, "angular grid points")
}

// processCaseInput builds the case description either from the -I YAML
// file or from the individual flags.
func processCaseInput(cmd *cobra.Command, geometry string) (cp *InputParameters.CaseParameters) {
	caseFile, _ := cmd.Flags().GetString("caseFile")
	if len(caseFile) != 0 {
		var (
			data []byte
			err  error
		)
		if data, err = os.ReadFile(caseFile); err != nil {
			panic(err)
		}
		cp = &InputParameters.CaseParameters{}
		if err = cp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
Title: "Hot blob under a free surface"
Geometry: cylinder       # or sphere
Forcing: delta           # or smooth
BoundaryCondition: NSFS  # FS, NS or NSFS
OuterRadius: 2.22
InnerRadius: 1.22
AnomalyRadius: 1.72      # delta only
ForcingPower: 0          # smooth only
Degree: 2
Order: 1                 # sphere only
Magnitude: 1.0
Viscosity: 1.0
GridRadial: 32
GridAngular: 64
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		return
	}
	cp = &InputParameters.CaseParameters{Geometry: geometry}
	cp.Forcing, _ = cmd.Flags().GetString("forcing")
	cp.BoundaryCondition, _ = cmd.Flags().GetString("bc")
	cp.OuterRadius, _ = cmd.Flags().GetFloat64("outer")
	cp.InnerRadius, _ = cmd.Flags().GetFloat64("inner")
	cp.AnomalyRadius, _ = cmd.Flags().GetFloat64("anomaly")
	cp.ForcingPower, _ = cmd.Flags().GetInt("power")
	cp.Degree, _ = cmd.Flags().GetInt("degree")
	if f := cmd.Flags().Lookup("order"); f != nil {
		cp.Order, _ = cmd.Flags().GetInt("order")
	}
	cp.Magnitude, _ = cmd.Flags().GetFloat64("magnitude")
	cp.Viscosity, _ = cmd.Flags().GetFloat64("nu")
	cp.GridRadial, _ = cmd.Flags().GetInt("nr")
	cp.GridAngular, _ = cmd.Flags().GetInt("nangular")
	return
}

// newCylindricalSolution dispatches on forcing and boundary condition.
func newCylindricalSolution(cp *InputParameters.CaseParameters) (*solutions.CylindricalSolution, error) {
	var (
		Rp, Rm = cp.OuterRadius, cp.InnerRadius
		rp     = cp.AnomalyRadius
		k, n   = cp.ForcingPower, cp.Degree
		g, nu  = cp.Magnitude, cp.Viscosity
	)
	if cp.Forcing == "delta" {
		switch cp.BoundaryCondition {
		case "FS":
			return solutions.NewCylindricalStokesSolutionDeltaFreeSlip(Rp, Rm, rp, n, g, nu)
		case "NS":
			return solutions.NewCylindricalStokesSolutionDeltaZeroSlip(Rp, Rm, rp, n, g, nu)
		default:
			return solutions.NewCylindricalStokesSolutionDeltaZeroFreeSlip(Rp, Rm, rp, n, g, nu)
		}
	}
	switch cp.BoundaryCondition {
	case "FS":
		return solutions.NewCylindricalStokesSolutionSmoothFreeSlip(Rp, Rm, k, n, g, nu)
	case "NS":
		return solutions.NewCylindricalStokesSolutionSmoothZeroSlip(Rp, Rm, k, n, g, nu)
	default:
		return solutions.NewCylindricalStokesSolutionSmoothZeroFreeSlip(Rp, Rm, k, n, g, nu)
	}
}

// RunCylinder evaluates the solution on the (r, phi) grid and prints a
// short report.
func RunCylinder(cp *InputParameters.CaseParameters) {
	cp.Print()
	s, err := newCylindricalSolution(cp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	var (
		nr, np         = gridDims(cp)
		uMax           float64
		pMin, pMax     = math.Inf(1), math.Inf(-1)
		wallUr, wallUt float64
	)
	for i := 0; i < nr; i++ {
		r := cp.InnerRadius + (cp.OuterRadius-cp.InnerRadius)*float64(i)/float64(nr-1)
		for j := 0; j < np; j++ {
			phi := 2 * math.Pi * float64(j) / float64(np)
			ur, uphi := s.VelocityPolar(r, phi)
			if speed := math.Hypot(ur, uphi); speed > uMax {
				uMax = speed
			}
			p := s.Pressure(r, phi)
			pMin = math.Min(pMin, p)
			pMax = math.Max(pMax, p)
			if i == 0 || i == nr-1 {
				wallUr = math.Max(wallUr, math.Abs(ur))
				if cp.BoundaryCondition == "NS" ||
					(cp.BoundaryCondition == "NSFS" && i == nr-1) {
					wallUt = math.Max(wallUt, math.Abs(uphi))
				}
			}
		}
	}
	fmt.Printf("%12.6e\t= max |u|\n", uMax)
	fmt.Printf("%12.6e\t= min p\n", pMin)
	fmt.Printf("%12.6e\t= max p\n", pMax)
	fmt.Printf("%12.6e\t= max wall |u_r|\n", wallUr)
	fmt.Printf("%12.6e\t= max wall |u_phi| (zero-slip walls)\n", wallUt)
	fmt.Printf("%12.6e\t= |shear stress| at outer wall\n", math.Abs(s.ShearStress(cp.OuterRadius)))
	fmt.Printf("%12.6e\t= |shear stress| at inner wall\n", math.Abs(s.ShearStress(cp.InnerRadius)))
}

func gridDims(cp *InputParameters.CaseParameters) (nr, na int) {
	nr, na = cp.GridRadial, cp.GridAngular
	if nr < 2 {
		nr = 32
	}
	if na < 2 {
		na = 64
	}
	return
}
