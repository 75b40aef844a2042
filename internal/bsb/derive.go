package bsb

import (
	"math"
	"strconv"

	"github.com/beetlebugorg/mapcal/internal/calib"
)

// Projection codes used in the PR field.
const (
	ProjectionUnknown = iota
	ProjectionMercator
	ProjectionTransverseMercator
	ProjectionLambertConformalConic
)

const (
	projectionLabels = "UNKNOWN,MERCATOR,TRANSVERSE MERCATOR,LAMBERT CONFORMAL CONIC"
	unitLabels       = "UNKNOWN,METERS,FEET,FATHOMS"
)

// Resolution converts a scale denominator and the pixel pitch in
// millimetres into whole dots per inch. It returns 0 unless all three
// values are present and non-zero.
func Resolution(scale calib.Int, dx, dy calib.Float) int64 {
	if !scale.Valid || scale.Value == 0 ||
		!dx.Valid || dx.Value == 0 ||
		!dy.Valid || dy.Value == 0 {
		return 0
	}
	pitch := (dx.Value + dy.Value) / 2.0 * 100.0
	return int64(float64(scale.Value)*2.54/pitch + 0.5)
}

// ProjectionCode clamps a PR value to 0..3; anything else is unknown.
func ProjectionCode(pr calib.Int) int64 {
	return labelCode(pr)
}

// ProjectionLabel returns the BSB projection name for a PR value.
func ProjectionLabel(pr calib.Int) string {
	return calib.SubField(projectionLabels, int(labelCode(pr)))
}

// UnitLabel returns the BSB depth unit name for a units code.
func UnitLabel(code calib.Int) string {
	return calib.SubField(unitLabels, int(labelCode(code)))
}

func labelCode(v calib.Int) int64 {
	if !v.Valid || v.Value < 0 || v.Value > 3 {
		return 0
	}
	return v.Value
}

// PhaseShift returns the CPH value for a set of tie points: 180 when the
// points straddle the antimeridian and the easternmost point lies to the
// left of the westernmost one in pixel space, 0 otherwise.
func PhaseShift(refs []calib.TiePoint) float64 {
	maxLon, minLon := -181.0, 181.0
	var maxX, minX int64
	for _, r := range refs {
		if r.Lon > maxLon {
			maxLon, maxX = r.Lon, r.X
		}
		if r.Lon < minLon {
			minLon, minX = r.Lon, r.X
		}
	}
	if maxLon*minLon < 0.0 && maxX < minX {
		return 180.0
	}
	return 0.0
}

// formatFloat renders v the way a default-formatted C++ stream with the
// given precision does: %g with trailing zeros removed.
func formatFloat(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

const (
	headerPrecision = 6
	coordPrecision  = 9
)
