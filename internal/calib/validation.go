package calib

// ValidateCoordinate validates a single coordinate pair.
// Latitude must be within ±90 and longitude within ±180 after
// normalization.
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// NormalizeLongitude maps longitudes east of 180° into the western
// hemisphere. Values at or below 180 are returned unchanged; only a single
// turn is removed.
func NormalizeLongitude(lon float64) float64 {
	if lon > 180.0 {
		return lon - 360.0
	}
	return lon
}

// Point is one geographic position read from a record.
type Point struct {
	Lat, Lon float64
}

// TiePoint ties a pixel position to a geographic position (a Cn field).
type TiePoint struct {
	X, Y int64
	Point
}

// TiePoints returns the C1, C2, ... fields of the record, stopping at the
// first missing index. Longitudes are normalized. Absent sub-fields carry
// the legacy sentinel.
func (b *Buffer) TiePoints() []TiePoint {
	var out []TiePoint
	for n := 1; ; n++ {
		key := indexedKey(tiePrefix, n)
		if !b.Has(key) {
			return out
		}
		out = append(out, TiePoint{
			X: b.FieldInt(key, 0).Raw(),
			Y: b.FieldInt(key, 1).Raw(),
			Point: Point{
				Lat: b.FieldFloat(key, 2).Raw(),
				Lon: NormalizeLongitude(b.FieldFloat(key, 3).Raw()),
			},
		})
	}
}

// Boundary returns the B1, B2, ... polygon vertices of the record,
// stopping at the first missing index. Longitudes are normalized.
func (b *Buffer) Boundary() []Point {
	var out []Point
	for n := 1; ; n++ {
		key := indexedKey(borderPrefix, n)
		if !b.Has(key) {
			return out
		}
		out = append(out, Point{
			Lat: b.FieldFloat(key, 0).Raw(),
			Lon: NormalizeLongitude(b.FieldFloat(key, 1).Raw()),
		})
	}
}
