package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/loadgen"
)

var (
	seismicIn        loadgen.SeismicInput
	seismicZone      string
	seismicImportance string
	seismicSoil      string
	seismicFrame     string
	seismicHeights   string
	seismicWeights   string
)

var seismicCmd = &cobra.Command{
	Use:   "seismic",
	Short: "Generate a static-equivalent seismic story-force distribution",
	Long: `Compute base shear and per-story force/shear/overturning-moment
distribution via the equivalent-static method of spec.md §4.H.

Example:
  beamlab seismic --zone IV --importance standard-1 --soil II --r 5 \
    --frame rc --heights 3,6,9 --weights 100,100,80`,
	RunE: runSeismic,
}

func init() {
	rootCmd.AddCommand(seismicCmd)
	seismicCmd.Flags().StringVar(&seismicZone, "zone", "III", "seismic zone: II, III, IV, V")
	seismicCmd.Flags().StringVar(&seismicImportance, "importance", "standard-1", "importance category")
	seismicCmd.Flags().StringVar(&seismicSoil, "soil", "II", "soil type: I, II, III")
	seismicCmd.Flags().Float64Var(&seismicIn.ResponseReduction, "r", 0, "response reduction factor R (required)")
	seismicCmd.Flags().StringVar(&seismicFrame, "frame", "rc", "frame type: rc, steel, shear-wall")
	seismicCmd.Flags().Float64Var(&seismicIn.Depth, "depth", 0, "plan depth d, m (shear-wall/masonry period formula only)")
	seismicCmd.Flags().Float64Var(&seismicIn.Period, "period", 0, "user-supplied fundamental period T, s (0 means compute T_a)")
	seismicCmd.Flags().IntVar(&seismicIn.DampingPercent, "damping", 5, "damping ratio, percent")
	seismicCmd.Flags().StringVar(&seismicHeights, "heights", "", "comma-separated story heights above base, m (required)")
	seismicCmd.Flags().StringVar(&seismicWeights, "weights", "", "comma-separated story seismic weights, kN (required)")
	seismicCmd.MarkFlagRequired("r")
	seismicCmd.MarkFlagRequired("heights")
	seismicCmd.MarkFlagRequired("weights")
}

func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func runSeismic(cmd *cobra.Command, args []string) error {
	heights, err := parseFloatList(seismicHeights)
	if err != nil {
		return fmt.Errorf("parsing --heights: %w", err)
	}
	weights, err := parseFloatList(seismicWeights)
	if err != nil {
		return fmt.Errorf("parsing --weights: %w", err)
	}

	seismicIn.Zone = loadgen.Zone(seismicZone)
	seismicIn.Importance = loadgen.ImportanceCategory(seismicImportance)
	seismicIn.Soil = loadgen.SoilType(seismicSoil)
	seismicIn.FrameType = loadgen.FrameType(seismicFrame)
	seismicIn.Heights = heights
	seismicIn.Weights = weights

	res, err := loadgen.Generate(seismicIn)
	if err != nil {
		return fmt.Errorf("seismic generation: %w", err)
	}

	fmt.Printf("T=%.4f s   Sa/g=%.4f   Ah=%.4f   base shear V_B=%.3f kN\n",
		res.Period, res.SpectralCoeff, res.Ah, res.BaseShear)
	fmt.Println("\nlevel   height(m)   Q_i(kN)   story shear(kN)   overturning(kN.m)")
	for i := range res.StoryForces {
		fmt.Printf("%5d   %9.2f   %7.3f   %15.3f   %17.3f\n",
			i+1, seismicIn.Heights[i], res.StoryForces[i], res.StoryShears[i], res.OverturningMoments[i])
	}
	return nil
}
