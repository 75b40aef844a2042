package mapcal

import (
	"github.com/beetlebugorg/mapcal/internal/calib"
)

// Chart summarizes one calibration record.
//
// A Chart is a read-only snapshot taken before the record is converted;
// it is what listings print and what ChartIndex stores.
type Chart struct {
	Index      int    // 0-based position of the record in the input
	Identifier string // FN without extension, matched by Options.Single
	Title      string // bracketed title line without brackets
	Name       string // NA
	Scale      int    // SC, 0 when missing

	TiePoints int // number of C1, C2, ... fields
	Vertices  int // number of B1, B2, ... fields

	// GeoBounds covers the boundary polygon, or the tie points when the
	// record has no boundary. Valid only when HasBounds is true.
	GeoBounds Bounds
	HasBounds bool
}

func newChart(index int, buf *calib.Buffer) Chart {
	c := Chart{
		Index:      index,
		Identifier: buf.Identifier(),
		Title:      buf.Title(),
		Name:       buf.Field(calib.KeyName),
		Scale:      int(buf.FieldInt(calib.KeyScale, 0).Or(0)),
	}

	refs := buf.TiePoints()
	border := buf.Boundary()
	c.TiePoints = len(refs)
	c.Vertices = len(border)

	points := border
	if len(points) == 0 {
		points = make([]calib.Point, len(refs))
		for i, r := range refs {
			points[i] = r.Point
		}
	}
	c.GeoBounds, c.HasBounds = pointsBounds(points)
	return c
}

// Bounds returns the chart's geographic coverage.
func (c Chart) Bounds() (Bounds, bool) {
	return c.GeoBounds, c.HasBounds
}
