package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/loadgen"
)

var windIn loadgen.WindInput

var windCmd = &cobra.Command{
	Use:   "wind",
	Short: "Generate an NSCP-style basic-speed-pressure wind load profile",
	Long: `Compute the windward/leeward pressure profile for a building
envelope via the basic-speed-pressure method of spec.md §4.H.

Example:
  beamlab wind --vb 60 --terrain 2 --class B --height 30 --width 20 --depth 15 --opening normal`,
	RunE: runWind,
}

func init() {
	rootCmd.AddCommand(windCmd)
	windCmd.Flags().Float64Var(&windIn.BasicSpeed, "vb", 0, "basic wind speed, m/s (required)")
	windCmd.Flags().IntVar(&windIn.Terrain, "terrain", 2, "terrain category, 1-4")
	var class string
	windCmd.Flags().StringVar(&class, "class", "B", "structure class: A, B, or C")
	windCmd.Flags().Float64Var(&windIn.Height, "height", 0, "building height z, m (required)")
	windCmd.Flags().Float64Var(&windIn.Width, "width", 0, "building width w, m (required)")
	windCmd.Flags().Float64Var(&windIn.Depth, "depth", 0, "building depth d, m")
	windCmd.Flags().Float64Var(&windIn.Topography.Slope, "slope", 0, "upwind topography slope, degrees")
	windCmd.Flags().Float64Var(&windIn.Topography.UpwindFraction, "upwind-fraction", 0, "fractional distance up the slope, 0-1")
	var opening string
	windCmd.Flags().StringVar(&opening, "opening", "normal", "opening category: normal, large, dominant, sealed")
	windCmd.Flags().IntVar(&windIn.StripCount, "strips", 10, "number of equal-height profile strips")
	windCmd.MarkFlagRequired("vb")
	windCmd.MarkFlagRequired("height")
	windCmd.MarkFlagRequired("width")
}

func runWind(cmd *cobra.Command, args []string) error {
	classFlag, _ := cmd.Flags().GetString("class")
	openingFlag, _ := cmd.Flags().GetString("opening")
	windIn.Class = loadgen.StructureClass(classFlag)
	windIn.Opening = loadgen.OpeningCategory(openingFlag)

	res, err := loadgen.Wind(windIn)
	if err != nil {
		return fmt.Errorf("wind generation: %w", err)
	}

	fmt.Printf("k1=%.3f  k3=%.3f  Cpe(windward)=%.2f  Cpe(leeward)=%.2f  Cpi=%.2f\n",
		res.K1, res.K3, res.CpeWindward, res.CpeLeeward, res.Cpi)
	fmt.Println("\nz_bottom  z_top   Vz(m/s)   Pz(N/m2)   F_windward(N)  F_leeward(N)")
	for _, s := range res.Profile {
		fmt.Printf("%8.2f %7.2f %9.3f %10.2f %14.2f %13.2f\n",
			s.ZBottom, s.ZTop, s.Vz, s.Pz, s.WindwardForce, s.LeewardForce)
	}
	return nil
}
