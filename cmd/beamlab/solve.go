package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/diagram"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/solve"
)

var (
	solveModelPath string
	solveLoadCase  string
	solveDiagram   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a model's linear-elastic response for one load case",
	Long: `Load a model from a JSON file (spec.md §6 wire shape), solve the
named load case, and print nodal displacements, reactions, and per-member
end forces.

Example:
  beamlab solve -m frame.json -c dead`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveModelPath, "model", "m", "", "path to model JSON file (required)")
	solveCmd.Flags().StringVarP(&solveLoadCase, "case", "c", "", "load case id (required)")
	solveCmd.Flags().BoolVar(&solveDiagram, "diagram", false, "print an ASCII Mz/Fy diagram for each member")
	solveCmd.MarkFlagRequired("model")
	solveCmd.MarkFlagRequired("case")
}

func runSolve(cmd *cobra.Command, args []string) error {
	m, err := model.LoadJSON(solveModelPath)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}

	res, err := solve.Solve(m, solveLoadCase, solve.DefaultConfig())
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	printSolveResult(m, res)
	if solveDiagram {
		printMemberDiagrams(m, res)
	}
	return nil
}

func printMemberDiagrams(m *model.Model, res *solve.Result) {
	lc, ok := m.LoadCase(solveLoadCase)
	if !ok {
		return
	}
	fmt.Println("\nmember diagrams (ASCII, local axes):")
	for i, geom := range res.Geoms {
		mf := res.MemberForces[i]
		length := geom.Element.Length
		profile := diagram.BuildSpanProfile(lc, geom.Member.ID, length)
		samples := diagram.Trace(mf.I[1], mf.I[5], mf.J[1], mf.J[5], length, profile, 20)

		fmt.Printf("\n%s:\n", geom.Member.ID)
		fmt.Print(diagram.RenderASCII("Mz", samples, func(s diagram.Sample) float64 { return s.Mz }, 60, 12))
		fmt.Print(diagram.RenderASCII("Fy", samples, func(s diagram.Sample) float64 { return s.Fy }, 60, 12))
	}
}

func printSolveResult(m *model.Model, res *solve.Result) {
	fmt.Printf("load case: %s  (CG used: %v, converged: %v, iterations: %d)\n",
		res.LoadCaseID, res.UsedCG, res.Converged, res.Iterations)

	fmt.Println("\nnode displacements (m, rad):")
	for i, n := range m.Nodes() {
		base := 6 * i
		fmt.Printf("  %-8s ux=%10.6f uy=%10.6f uz=%10.6f rx=%10.6f ry=%10.6f rz=%10.6f\n",
			n.ID, res.Displacements[base], res.Displacements[base+1], res.Displacements[base+2],
			res.Displacements[base+3], res.Displacements[base+4], res.Displacements[base+5])
	}

	fmt.Println("\nreactions (N, N.m), nonzero only:")
	for i, n := range m.Nodes() {
		base := 6 * i
		if _, ok := m.Support(n.ID); !ok {
			continue
		}
		fmt.Printf("  %-8s Rx=%10.3f Ry=%10.3f Rz=%10.3f Mx=%10.3f My=%10.3f Mz=%10.3f\n",
			n.ID, res.Reactions[base], res.Reactions[base+1], res.Reactions[base+2],
			res.Reactions[base+3], res.Reactions[base+4], res.Reactions[base+5])
	}

	fmt.Println("\nmember end forces (N, N.m), local axes:")
	for _, mf := range res.MemberForces {
		fmt.Printf("  %-8s i: Nx=%10.3f Vy=%10.3f Vz=%10.3f T=%10.3f My=%10.3f Mz=%10.3f\n",
			mf.MemberID, mf.I[0], mf.I[1], mf.I[2], mf.I[3], mf.I[4], mf.I[5])
		fmt.Printf("  %-8s j: Nx=%10.3f Vy=%10.3f Vz=%10.3f T=%10.3f My=%10.3f Mz=%10.3f\n",
			"", mf.J[0], mf.J[1], mf.J[2], mf.J[3], mf.J[4], mf.J[5])
	}

	if len(res.Warnings) > 0 {
		fmt.Println("\nwarnings:")
		for _, w := range res.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
