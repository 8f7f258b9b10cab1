package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/periodica/orbsim/internal/geom"
)

const (
	scatterWidth  = 64
	scatterHeight = 24
)

// RenderScatter projects points onto the x-y plane as a fixed-size rune
// grid for non-interactive output. Depth along z picks the glyph, far to
// near: '.', 'o', 'O'. Nearer points draw over farther ones.
func RenderScatter(points []geom.Vec3) string {
	if len(points) == 0 {
		return ""
	}

	maxExtent := 0.0
	for _, p := range points {
		for _, v := range []float64{math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)} {
			if v > maxExtent {
				maxExtent = v
			}
		}
	}
	if maxExtent == 0 {
		maxExtent = 1
	}

	ordered := make([]geom.Vec3, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })

	grid := make([][]rune, scatterHeight)
	for i := range grid {
		grid[i] = make([]rune, scatterWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Terminal cells are about twice as tall as wide, so the x scale gets
	// doubled to keep the projection visually round.
	sy := float64(scatterHeight/2-1) / maxExtent
	sx := 2 * sy
	for _, p := range ordered {
		col := scatterWidth/2 + int(p.X*sx)
		row := scatterHeight/2 - int(p.Y*sy)
		if col < 0 || col >= scatterWidth || row < 0 || row >= scatterHeight {
			continue
		}
		grid[row][col] = depthGlyph(p.Z / maxExtent)
	}

	var b strings.Builder
	border := "  +" + strings.Repeat("-", scatterWidth) + "+\n"
	b.WriteString(border)
	for _, row := range grid {
		b.WriteString("  |")
		b.WriteString(string(row))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

func depthGlyph(t float64) rune {
	switch {
	case t > 0.33:
		return 'O'
	case t < -0.33:
		return '.'
	default:
		return 'o'
	}
}
