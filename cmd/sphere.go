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

// sphereCmd represents the sphere command
var sphereCmd = &cobra.Command{
	Use:   "sphere",
	Short: "Evaluate the 3D spherical shell solution on an (r, theta) grid",
	Long: `
Evaluates the analytical Stokes solution for a 3D spherical shell on an
(r, theta) meridional grid at phi=0 and reports field extrema and boundary
condition residuals.

assess sphere -I case.yaml
assess sphere --forcing smooth --bc NS -k 1 -l 2 -m 1`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sphere called")
		cp := processCaseInput(cmd, "sphere")
		defer startProfile(cmd)()
		RunSphere(cp)
	},
}

func init() {
	rootCmd.AddCommand(sphereCmd)
	addCaseFlags(sphereCmd)
	sphereCmd.Flags().IntP("degree", "l", 2, "spherical harmonic degree l")
	sphereCmd.Flags().IntP("order", "m", 0, "spherical harmonic order m, -l <= m <= l")
}

// newSphericalSolution dispatches on forcing and boundary condition.
func newSphericalSolution(cp *InputParameters.CaseParameters) (*solutions.SphericalSolution, error) {
	var (
		Rp, Rm  = cp.OuterRadius, cp.InnerRadius
		rp      = cp.AnomalyRadius
		k, l, m = cp.ForcingPower, cp.Degree, cp.Order
		g, nu   = cp.Magnitude, cp.Viscosity
	)
	if cp.Forcing == "delta" {
		switch cp.BoundaryCondition {
		case "FS":
			return solutions.NewSphericalStokesSolutionDeltaFreeSlip(Rp, Rm, rp, l, m, g, nu)
		case "NS":
			return solutions.NewSphericalStokesSolutionDeltaZeroSlip(Rp, Rm, rp, l, m, g, nu)
		default:
			return solutions.NewSphericalStokesSolutionDeltaZeroFreeSlip(Rp, Rm, rp, l, m, g, nu)
		}
	}
	switch cp.BoundaryCondition {
	case "FS":
		return solutions.NewSphericalStokesSolutionSmoothFreeSlip(Rp, Rm, k, l, m, g, nu)
	case "NS":
		return solutions.NewSphericalStokesSolutionSmoothZeroSlip(Rp, Rm, k, l, m, g, nu)
	default:
		return solutions.NewSphericalStokesSolutionSmoothZeroFreeSlip(Rp, Rm, k, l, m, g, nu)
	}
}

// RunSphere evaluates the solution on the meridional grid and prints a
// short report. Grid colatitudes stay off the poles, where the tangential
// basis is singular.
func RunSphere(cp *InputParameters.CaseParameters) {
	cp.Print()
	s, err := newSphericalSolution(cp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	var (
		nr, nt         = gridDims(cp)
		phi            = 0.
		uMax           float64
		pMin, pMax     = math.Inf(1), math.Inf(-1)
		wallUr, wallUt float64
	)
	for i := 0; i < nr; i++ {
		r := cp.InnerRadius + (cp.OuterRadius-cp.InnerRadius)*float64(i)/float64(nr-1)
		for j := 0; j < nt; j++ {
			theta := math.Pi * (float64(j) + 0.5) / float64(nt)
			ur, ut, up := s.VelocitySpherical(r, theta, phi)
			if speed := math.Sqrt(ur*ur + ut*ut + up*up); speed > uMax {
				uMax = speed
			}
			p := s.Pressure(r, theta, phi)
			pMin = math.Min(pMin, p)
			pMax = math.Max(pMax, p)
			if i == 0 || i == nr-1 {
				wallUr = math.Max(wallUr, math.Abs(ur))
				if cp.BoundaryCondition == "NS" ||
					(cp.BoundaryCondition == "NSFS" && i == nr-1) {
					wallUt = math.Max(wallUt, math.Max(math.Abs(ut), math.Abs(up)))
				}
			}
		}
	}
	fmt.Printf("%12.6e\t= max |u|\n", uMax)
	fmt.Printf("%12.6e\t= min p\n", pMin)
	fmt.Printf("%12.6e\t= max p\n", pMax)
	fmt.Printf("%12.6e\t= max wall |u_r|\n", wallUr)
	fmt.Printf("%12.6e\t= max wall |u_tangential| (zero-slip walls)\n", wallUt)
}
