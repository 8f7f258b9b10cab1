// Package export renders point sets and sampled curves as standalone SVG
// documents, for keeping results outside the terminal.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/periodica/orbsim/internal/geom"
	"github.com/periodica/orbsim/internal/nucleus"
)

const (
	background  = "#0a0a0a"
	protonFill  = "#e25555"
	neutronFill = "#5d7fdd"
)

// PointsSVG draws a point cloud as circles on the x-y plane. Depth along
// z picks radius and opacity, and circles are emitted far to near so
// closer points paint over farther ones.
func PointsSVG(points []geom.Vec3, width, height int, fill string) string {
	if len(points) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(svgHeader(width, height))
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fill))

	emitCircles(&sb, points, width, height, func(i int) string { return "" })

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// NucleonsSVG draws protons and neutrons in separate colors, far to near.
func NucleonsSVG(nucleons []nucleus.Nucleon, width, height int) string {
	if len(nucleons) == 0 {
		return ""
	}

	points := make([]geom.Vec3, len(nucleons))
	for i, n := range nucleons {
		points[i] = n.Pos
	}

	var sb strings.Builder
	sb.WriteString(svgHeader(width, height))
	sb.WriteString("<g>\n")

	emitCircles(&sb, points, width, height, func(i int) string {
		if nucleons[i].Proton {
			return fmt.Sprintf(" fill=%q", protonFill)
		}
		return fmt.Sprintf(" fill=%q", neutronFill)
	})

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CurveSVG draws a sampled curve as a single stroked path, padded 10% on
// each side.
func CurveSVG(xs, ys []float64, width, height int, stroke string) string {
	if len(xs) < 2 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(svgHeader(width, height))
	sb.WriteString(fmt.Sprintf("<path fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\" d=\"M", stroke))
	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}

func svgHeader(width, height int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// emitCircles projects points orthographically, sorts them far to near
// and writes one circle each. attr supplies per-point attributes keyed by
// the original index.
func emitCircles(sb *strings.Builder, points []geom.Vec3, width, height int, attr func(i int) string) {
	maxExtent := 0.0
	for _, p := range points {
		for _, v := range [3]float64{p.X, p.Y, p.Z} {
			if v < 0 {
				v = -v
			}
			if v > maxExtent {
				maxExtent = v
			}
		}
	}
	if maxExtent == 0 {
		maxExtent = 1
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return points[order[a]].Z < points[order[b]].Z })

	minDim := float64(width)
	if float64(height) < minDim {
		minDim = float64(height)
	}
	scale := 0.45 * minDim / maxExtent

	for _, i := range order {
		p := points[i]
		cx := float64(width)/2 + p.X*scale
		cy := float64(height)/2 - p.Y*scale
		depth := p.Z / maxExtent
		radius := 0.004*minDim*(1.6+0.6*depth) + 1
		opacity := 0.65 + 0.3*depth
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill-opacity=\"%.2f\"%s/>\n",
			cx, cy, radius, opacity, attr(i)))
	}
}
