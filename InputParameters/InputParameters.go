package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title             string  `yaml:"Title"`
	Geometry          string  `yaml:"Geometry"`          // cylinder or sphere
	Forcing           string  `yaml:"Forcing"`           // delta or smooth
	BoundaryCondition string  `yaml:"BoundaryCondition"` // FS, NS or NSFS
	OuterRadius       float64 `yaml:"OuterRadius"`
	InnerRadius       float64 `yaml:"InnerRadius"`
	AnomalyRadius     float64 `yaml:"AnomalyRadius"` // delta forcing only
	ForcingPower      int     `yaml:"ForcingPower"`  // smooth forcing only
	Degree            int     `yaml:"Degree"`        // n (cylinder) or l (sphere)
	Order             int     `yaml:"Order"`         // m, sphere only
	Magnitude         float64 `yaml:"Magnitude"`
	Viscosity         float64 `yaml:"Viscosity"`
	GridRadial        int     `yaml:"GridRadial"`
	GridAngular       int     `yaml:"GridAngular"`
}

func (cp *CaseParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, cp); err != nil {
		return err
	}
	return cp.validate()
}

func (cp *CaseParameters) validate() error {
	switch cp.Geometry {
	case "cylinder", "sphere":
	default:
		return fmt.Errorf("unknown Geometry %q, want cylinder or sphere", cp.Geometry)
	}
	switch cp.Forcing {
	case "delta", "smooth":
	default:
		return fmt.Errorf("unknown Forcing %q, want delta or smooth", cp.Forcing)
	}
	switch cp.BoundaryCondition {
	case "FS", "NS", "NSFS":
	default:
		return fmt.Errorf("unknown BoundaryCondition %q, want FS, NS or NSFS", cp.BoundaryCondition)
	}
	return nil
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%s]\t\t\t= Geometry\n", cp.Geometry)
	fmt.Printf("[%s]\t\t\t= Forcing\n", cp.Forcing)
	fmt.Printf("[%s]\t\t\t= Boundary Condition\n", cp.BoundaryCondition)
	fmt.Printf("%8.5f\t\t= Outer Radius\n", cp.OuterRadius)
	fmt.Printf("%8.5f\t\t= Inner Radius\n", cp.InnerRadius)
	if cp.Forcing == "delta" {
		fmt.Printf("%8.5f\t\t= Anomaly Radius\n", cp.AnomalyRadius)
	} else {
		fmt.Printf("[%d]\t\t\t\t= Forcing Power\n", cp.ForcingPower)
	}
	fmt.Printf("[%d]\t\t\t\t= Degree\n", cp.Degree)
	if cp.Geometry == "sphere" {
		fmt.Printf("[%d]\t\t\t\t= Order\n", cp.Order)
	}
	fmt.Printf("%8.5f\t\t= Magnitude\n", cp.Magnitude)
	fmt.Printf("%8.5f\t\t= Viscosity\n", cp.Viscosity)
}
