package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title       string  `yaml:"Title"`
	Resolution  int     `yaml:"Resolution"`  // radial ring count n_r
	Ratio       float64 `yaml:"Ratio"`       // n_phi = round(Ratio * Resolution)
	Parallelism int     `yaml:"Parallelism"` // goroutines for surface evaluation
	RotationY   float64 `yaml:"RotationY"`   // display rotation about Y, degrees
	Quadrify    bool    `yaml:"Quadrify"`    // merge triangle pairs into quads
	QuadAngle   float64 `yaml:"QuadAngle"`   // max normal angle for quad merging, degrees
	SmoothGroup int     `yaml:"SmoothGroup"` // uniform smoothing group
	CenterPivot bool    `yaml:"CenterPivot"` // move bounding-box centre to origin
}

// NewInputParameters returns the defaults matching the original generator:
// 64 rings, double angular density, umbrella opening rotated to +Z.
func NewInputParameters() *InputParameters {
	return &InputParameters{
		Title:       "Boy's Surface",
		Resolution:  64,
		Ratio:       2.0,
		Parallelism: 1,
		RotationY:   -90,
		Quadrify:    true,
		QuadAngle:   30,
		SmoothGroup: 1,
		CenterPivot: true,
	}
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8d\t\t= Resolution\n", ip.Resolution)
	fmt.Printf("%8.5f\t\t= Ratio\n", ip.Ratio)
	fmt.Printf("%8d\t\t= Parallelism\n", ip.Parallelism)
	fmt.Printf("%8.5f\t\t= RotationY\n", ip.RotationY)
	fmt.Printf("[%v]\t\t\t= Quadrify\n", ip.Quadrify)
	fmt.Printf("%8.5f\t\t= QuadAngle\n", ip.QuadAngle)
	fmt.Printf("[%d]\t\t\t= SmoothGroup\n", ip.SmoothGroup)
	fmt.Printf("[%v]\t\t\t= CenterPivot\n", ip.CenterPivot)
}
