package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/design"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Code-style design checks (steel interaction, RC beam/column sizing)",
	Long: `Design and capacity checks adapted from NSCP 2015 provisions
(spec.md §4.I).

Subcommands:
  steel      - steel member interaction ratio
  rc-beam    - RC rectangular beam flexure/shear sizing
  rc-column  - RC rectangular column uniaxial/biaxial interaction`,
}

func init() {
	rootCmd.AddCommand(designCmd)
}

// --- steel ---

var steelIn design.SteelCheckInput

var designSteelCmd = &cobra.Command{
	Use:   "steel",
	Short: "Steel member interaction ratio",
	Example: `  beamlab design steel --area 0.01 --iy 8e-6 --iz 4e-5 --zz 4e-4 \
    --fy 2.5e8 --e 2e11 --length 4 --k 1.0 --lb 4 --pu 50000 --mux 30000`,
	RunE: runDesignSteel,
}

func init() {
	designCmd.AddCommand(designSteelCmd)
	sec := &model.Section{ID: "cli-steel"}
	mat := &model.Material{ID: "cli-steel-mat"}
	steelIn.Section = sec
	steelIn.Mat = mat

	f := designSteelCmd.Flags()
	f.Float64Var(&sec.A, "area", 0, "cross-section area, m^2 (required)")
	f.Float64Var(&sec.Iy, "iy", 0, "second moment about y, m^4 (required)")
	f.Float64Var(&sec.Iz, "iz", 0, "second moment about z, m^4 (required)")
	f.Float64Var(&sec.Zz, "zz", 0, "elastic section modulus about z, m^3 (required)")
	f.Float64Var(&mat.YieldStrength, "fy", 0, "yield strength, Pa (required)")
	f.Float64Var(&mat.E, "e", 0, "elastic modulus, Pa (required)")
	f.Float64Var(&steelIn.UnbracedLength, "length", 0, "unbraced length L, m (required)")
	f.Float64Var(&steelIn.EffectiveLengthFactor, "k", 1.0, "effective length factor k")
	f.Float64Var(&steelIn.UnbracedFlexuralLength, "lb", 0, "unbraced flexural length L_b, m")
	f.Float64Var(&steelIn.Pu, "pu", 0, "factored axial force, N (compression positive)")
	f.Float64Var(&steelIn.Mux, "mux", 0, "factored major-axis moment, N.m")
	f.Float64Var(&steelIn.Muy, "muy", 0, "factored minor-axis moment, N.m")
	designSteelCmd.MarkFlagRequired("area")
	designSteelCmd.MarkFlagRequired("iy")
	designSteelCmd.MarkFlagRequired("iz")
	designSteelCmd.MarkFlagRequired("zz")
	designSteelCmd.MarkFlagRequired("fy")
	designSteelCmd.MarkFlagRequired("e")
	designSteelCmd.MarkFlagRequired("length")
}

func runDesignSteel(cmd *cobra.Command, args []string) error {
	res, err := design.SteelCheck(steelIn)
	if err != nil {
		return fmt.Errorf("steel check: %w", err)
	}
	fmt.Printf("tension capacity:     %12.1f N\n", res.TensionCapacity)
	fmt.Printf("compression capacity: %12.1f N  (Fcr=%.3e Pa, Fe=%.3e Pa)\n", res.CompressionCapacity, res.Fcr, res.Fe)
	fmt.Printf("flexure capacity:     %12.1f N.m\n", res.FlexureCapacityX)
	fmt.Printf("tension ratio:        %8.4f\n", res.TensionRatio)
	fmt.Printf("compression ratio:    %8.4f\n", res.CompressionRatio)
	fmt.Printf("flexure ratio:        %8.4f\n", res.FlexureRatio)
	fmt.Printf("interaction ratio:    %8.4f\n", res.InteractionRatio)
	fmt.Printf("\ngoverning: %s  utilization=%.4f\n", res.GoverningTerm, res.Utilization)
	return nil
}

// --- rc-beam ---

var rcBeamIn design.RCBeamInput

var designRCBeamCmd = &cobra.Command{
	Use:   "rc-beam",
	Short: "RC rectangular beam flexure and shear sizing",
	Example: `  beamlab design rc-beam --width 300 --height 500 --cover 65 \
    --fc 28 --fy 415 --mu 180 --vu 120`,
	RunE: runDesignRCBeam,
}

func init() {
	designCmd.AddCommand(designRCBeamCmd)
	f := designRCBeamCmd.Flags()
	f.Float64Var(&rcBeamIn.Width, "width", 0, "beam width b, mm (required)")
	f.Float64Var(&rcBeamIn.Height, "height", 0, "beam total depth h, mm (required)")
	f.Float64Var(&rcBeamIn.Cover, "cover", 0, "cover to tension steel centroid, mm (required)")
	f.Float64Var(&rcBeamIn.Fc, "fc", 0, "f'c, MPa (required)")
	f.Float64Var(&rcBeamIn.Fy, "fy", 0, "fy, MPa (required)")
	f.Float64Var(&rcBeamIn.Mu, "mu", 0, "factored moment, kN.m (required)")
	f.Float64Var(&rcBeamIn.Vu, "vu", 0, "factored shear, kN")
	f.Float64Var(&rcBeamIn.LimitRatio, "limit-ratio", 0, "neutral-axis/depth limit (0 derives from fy)")
	designRCBeamCmd.MarkFlagRequired("width")
	designRCBeamCmd.MarkFlagRequired("height")
	designRCBeamCmd.MarkFlagRequired("cover")
	designRCBeamCmd.MarkFlagRequired("fc")
	designRCBeamCmd.MarkFlagRequired("fy")
	designRCBeamCmd.MarkFlagRequired("mu")
}

func runDesignRCBeam(cmd *cobra.Command, args []string) error {
	flex, err := design.DesignFlexure(rcBeamIn)
	if err != nil {
		return fmt.Errorf("flexure design: %w", err)
	}
	fmt.Printf("d=%.1f mm  rho_min=%.5f  rho_max=%.5f\n", flex.EffectiveDepth, flex.RhoMin, flex.RhoMax)
	fmt.Printf("As required: %.1f mm^2  (doubly reinforced required: %v)\n", flex.AsRequired, flex.RequiresDoubly)
	fmt.Printf("phiMn: %.2f kN.m  (c=%.1f mm, a=%.1f mm)\n", flex.PhiMn, flex.NeutralAxisDepth, flex.CompressionDepth)

	if rcBeamIn.Vu > 0 {
		shear, err := design.DesignShear(rcBeamIn, flex.EffectiveDepth)
		if err != nil {
			return fmt.Errorf("shear design: %w", err)
		}
		fmt.Printf("\nVc: %.2f kN  stirrups required: %v\n", shear.Vc, shear.StirrupsRequired)
		if shear.StirrupsRequired {
			fmt.Printf("Vs required: %.2f kN  spacing: %.0f mm (cap %.0f mm)\n", shear.VsRequired, shear.Spacing, shear.SpacingCap)
		}
	}
	return nil
}

// --- rc-column ---

var rcColumnIn design.RCColumnInput

var designRCColumnCmd = &cobra.Command{
	Use:   "rc-column",
	Short: "RC rectangular column uniaxial/biaxial interaction check",
	Example: `  beamlab design rc-column --width 400 --depth 400 --length 3000 \
    --fc 28 --fy 415 --asc 3200 --pu 900 --mux 60 --muy 40`,
	RunE: runDesignRCColumn,
}

func init() {
	designCmd.AddCommand(designRCColumnCmd)
	f := designRCColumnCmd.Flags()
	f.Float64Var(&rcColumnIn.Width, "width", 0, "column width, mm (required)")
	f.Float64Var(&rcColumnIn.Depth, "depth", 0, "column depth, mm (required)")
	f.Float64Var(&rcColumnIn.Length, "length", 0, "unsupported length, mm (required)")
	f.Float64Var(&rcColumnIn.Fc, "fc", 0, "f'c, MPa (required)")
	f.Float64Var(&rcColumnIn.Fy, "fy", 0, "fy, MPa (required)")
	f.Float64Var(&rcColumnIn.Asc, "asc", 0, "total longitudinal steel area, mm^2 (required)")
	f.Float64Var(&rcColumnIn.Ac, "ac", 0, "net concrete area, mm^2 (0 derives from width*depth-asc)")
	f.Float64Var(&rcColumnIn.Pu, "pu", 0, "factored axial load, kN (required)")
	f.Float64Var(&rcColumnIn.Mux, "mux", 0, "factored moment about x, kN.m")
	f.Float64Var(&rcColumnIn.Muy, "muy", 0, "factored moment about y, kN.m")
	f.Float64Var(&rcColumnIn.EffectiveLengthFactor, "k", 1.0, "effective length factor k")
	f.BoolVar(&rcColumnIn.Braced, "braced", true, "braced frame (affects slenderness limit)")
	designRCColumnCmd.MarkFlagRequired("width")
	designRCColumnCmd.MarkFlagRequired("depth")
	designRCColumnCmd.MarkFlagRequired("length")
	designRCColumnCmd.MarkFlagRequired("fc")
	designRCColumnCmd.MarkFlagRequired("fy")
	designRCColumnCmd.MarkFlagRequired("asc")
	designRCColumnCmd.MarkFlagRequired("pu")
}

func runDesignRCColumn(cmd *cobra.Command, args []string) error {
	res, err := design.Check(rcColumnIn)
	if err != nil {
		return fmt.Errorf("column check: %w", err)
	}
	fmt.Printf("Puz: %.1f kN   min eccentricity: %.1f mm   slenderness: %.2f (slender: %v)\n",
		res.Puz, res.MinEccentricity, res.SlendernessRatio, res.IsSlender)
	if res.DeltaMoment != 0 {
		fmt.Printf("P-delta additional moment: %.2f kN.m\n", res.DeltaMoment)
	}
	fmt.Printf("alpha: %.3f   Mux1: %.2f kN.m   Muy1: %.2f kN.m\n", res.Alpha, res.Mux1, res.Muy1)
	fmt.Printf("interaction ratio: %.4f   adequate: %v\n", res.InteractionRatio, res.IsAdequate)
	return nil
}
