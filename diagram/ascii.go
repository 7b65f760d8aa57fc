package diagram

import (
	"fmt"
	"math"
	"strings"
)

// RenderASCII draws a terminal bar-style plot of one curve (Mz or Fy)
// across a member's samples, in the idiom of
// alexiusacademia-gorcb/internal/diagram/ascii.go's fixed-width,
// proportional-scale terminal rendering — adapted here from a static
// stress-block cross-section to a sampled x-vs-value curve. Used by the
// `solve --diagram` CLI path (cmd/beamlab/solve.go) rather than the
// browser viewport, which remains the real client for diagrams (spec.md
// §1 non-goal).
func RenderASCII(label string, samples []Sample, pick func(Sample) float64, width, height int) string {
	if len(samples) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	values := make([]float64, len(samples))
	minV, maxV := math.Inf(1), math.Inf(-1)
	for i, s := range samples {
		v := pick(s)
		values[i] = v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		maxV = minV + 1
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = bytes(width, ' ')
	}
	zeroRow := int(math.Round((maxV - 0) / (maxV - minV) * float64(height-1)))
	if zeroRow >= 0 && zeroRow < height {
		for c := 0; c < width; c++ {
			grid[zeroRow][c] = '-'
		}
	}

	for i, v := range values {
		col := int(math.Round(float64(i) / float64(len(values)-1) * float64(width-1)))
		row := int(math.Round((maxV - v) / (maxV - minV) * float64(height-1)))
		if row < 0 {
			row = 0
		}
		if row >= height {
			row = height - 1
		}
		grid[row][col] = '*'
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  [min=%.4g max=%.4g]\n", label, minV, maxV))
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func bytes(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}
