package calib

import (
	"strconv"
	"strings"
)

// Field keys of a MapCal calibration record.
const (
	KeyFile       = "FN"   // chart image file name
	KeyName       = "NA"   // chart name
	KeyNumber     = "NU"   // chart number
	KeyWidth      = "WI"   // raster width in pixels
	KeyHeight     = "HE"   // raster height in pixels
	KeyScale      = "SC"   // scale denominator
	KeyPitchX     = "DX"   // pixel pitch X (mm)
	KeyPitchY     = "DY"   // pixel pitch Y (mm)
	KeyDatum      = "GD"   // geodetic datum
	KeyProjection = "PR"   // projection code
	KeyProjParam  = "PP"   // projection parameter
	KeyProjIndex  = "PI"   // projection interval
	KeyParallel   = "SP"   // standard parallel
	KeySkew       = "SK"   // skew angle
	KeyTextAngle  = "TA"   // text angle
	KeySounding   = "SD"   // sounding datum
	KeyUnits      = "DU"   // depth units code
	KeyUnitsAlt   = "UN"   // depth units code, older writers
	KeyLon0       = "LON0" // central meridian
	KeyComment    = "CR"   // multi-line comment
	KeyDatumShift = "DS"   // datum shift, degrees

	addPrefix    = "ADD"
	tiePrefix    = "C"
	borderPrefix = "B"
)

func indexedKey(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// AddKey returns the synthetic key of the n-th extra header line.
func AddKey(n int) string { return indexedKey(addPrefix, n) }

// StripExtension removes everything from the last '.' on.
func StripExtension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Identifier returns the record's chart identifier: the FN field without
// its extension.
func (b *Buffer) Identifier() string {
	return StripExtension(b.Field(KeyFile))
}

// BaseName returns the title without its extension. Output headers are
// named after it.
func (b *Buffer) BaseName() string {
	return StripExtension(b.Title())
}
