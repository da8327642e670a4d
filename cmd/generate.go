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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/M6D6M6A/boys-surface/InputParameters"
	"github.com/M6D6M6A/boys-surface/mesh"
	"github.com/M6D6M6A/boys-surface/postprocess"
)

type ModelSurface struct {
	ParamFile string
	Profile   bool
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Boy's surface mesh and report its statistics",
	Long: `
Builds the vertex and face lists for the Bryant-Kusner immersion at the
requested resolution, applies host-style post-processing (pivot centering,
display rotation, quad merging, smoothing groups) and prints a summary.

boysurf generate -r 128 --ratio 2.0 -p 8`,
	Run: func(cmd *cobra.Command, args []string) {
		ms := &ModelSurface{}
		ms.ParamFile, _ = cmd.Flags().GetString("paramFile")
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(cmd, ms)
		RunGenerate(ms, ip)
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().IntP("resolution", "r", 64, "number of radial subdivisions n_r, must be >= 2")
	GenerateCmd.Flags().Float64P("ratio", "a", 2.0, "angular density: n_phi = round(ratio*resolution), must be even and >= 4")
	GenerateCmd.Flags().IntP("parallelism", "p", 1, "goroutines used for surface evaluation")
	GenerateCmd.Flags().StringP("paramFile", "I", "", "optional YAML input parameters file")
	GenerateCmd.Flags().Bool("profile", false, "write a CPU profile for the build")
}

func processInput(cmd *cobra.Command, ms *ModelSurface) (ip *InputParameters.InputParameters) {
	ip = InputParameters.NewInputParameters()
	if len(ms.ParamFile) != 0 {
		data, err := os.ReadFile(ms.ParamFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
Title: "Boy's Surface"
Resolution: 64
Ratio: 2.0
Parallelism: 4
RotationY: -90
Quadrify: true
QuadAngle: 30
SmoothGroup: 1
CenterPivot: true
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("error unmarshaling parameters file: %s\n", err.Error())
			os.Exit(1)
		}
	}
	// Command-line flags override file values when set explicitly
	if cmd.Flags().Changed("resolution") {
		ip.Resolution, _ = cmd.Flags().GetInt("resolution")
	}
	if cmd.Flags().Changed("ratio") {
		ip.Ratio, _ = cmd.Flags().GetFloat64("ratio")
	}
	if cmd.Flags().Changed("parallelism") {
		ip.Parallelism, _ = cmd.Flags().GetInt("parallelism")
	}
	ip.Print()
	return
}

func RunGenerate(ms *ModelSurface, ip *InputParameters.InputParameters) {
	if ms.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	bs, err := mesh.NewBoysSurface(ip.Resolution, ip.Ratio)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	bs.Parallelism = ip.Parallelism

	start := time.Now()
	m := bs.Build()
	buildTime := time.Since(start)

	if ip.CenterPivot {
		postprocess.CenterPivot(m)
	}
	if ip.RotationY != 0 {
		postprocess.RotateY(m, ip.RotationY)
	}
	fmt.Printf("built %d vertices, %d triangles in %v\n",
		m.NumVertices, m.NumFaces, buildTime)
	min, max := m.Bounds()
	fmt.Printf("bounds min = [%.4f %.4f %.4f], max = [%.4f %.4f %.4f]\n",
		min[0], min[1], min[2], max[0], max[1], max[2])

	if ip.Quadrify {
		pm := postprocess.Quadrify(m, ip.QuadAngle)
		pm.SmoothingGroups(ip.SmoothGroup)
		fmt.Printf("quadrified: %d quads, %d triangles remain, smoothing group %d\n",
			pm.NumQuads, pm.NumTris, ip.SmoothGroup)
	}
}
