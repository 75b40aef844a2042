package mapcal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beetlebugorg/mapcal/internal/calib"
)

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees. Longitudes are normalized to at
// most 180, so a chart crossing the antimeridian spans (nearly) the whole
// longitude range.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinLon: min(b.MinLon, other.MinLon),
		MaxLon: max(b.MaxLon, other.MaxLon),
		MinLat: min(b.MinLat, other.MinLat),
		MaxLat: max(b.MaxLat, other.MaxLat),
	}
}

// Valid reports whether the bounds lie on the globe and are not inverted.
func (b Bounds) Valid() bool {
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return false
	}
	return calib.ValidateCoordinate(b.MinLat, b.MinLon) == nil &&
		calib.ValidateCoordinate(b.MaxLat, b.MaxLon) == nil
}

// ParseBounds parses "minLon,minLat,maxLon,maxLat".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("bounds %q: want minLon,minLat,maxLon,maxLat", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("bounds %q: %w", s, err)
		}
		v[i] = f
	}
	b := Bounds{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if !b.Valid() {
		return Bounds{}, fmt.Errorf("bounds %q: out of range or inverted", s)
	}
	return b, nil
}

// pointsBounds calculates the bounding box of a set of positions.
// Positions that are not valid coordinates (for example a missing
// longitude) are ignored; ok is false when none remain.
func pointsBounds(points []calib.Point) (b Bounds, ok bool) {
	for _, p := range points {
		if calib.ValidateCoordinate(p.Lat, p.Lon) != nil {
			continue
		}
		if !ok {
			b = Bounds{MinLon: p.Lon, MaxLon: p.Lon, MinLat: p.Lat, MaxLat: p.Lat}
			ok = true
			continue
		}
		b = b.Union(Bounds{MinLon: p.Lon, MaxLon: p.Lon, MinLat: p.Lat, MaxLat: p.Lat})
	}
	return b, ok
}
