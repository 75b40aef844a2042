// Package bsb transcodes MapCal calibration records into BSB (KAP) text
// headers.
package bsb

import (
	"bufio"
	"fmt"
	"io"

	"github.com/beetlebugorg/mapcal/internal/calib"
)

// Field defaults used when a record leaves a value out.
const (
	Unknown          = "UNKNOWN"
	DefaultSkew      = "0.0"
	DefaultTextAngle = "90.0"
)

// Header is one BSB header derived from a calibration record. Build fills
// it; WriteTo renders it.
type Header struct {
	Banner   string   // written as the first comment line when non-empty
	Comments []string // CR sub-lines that are not commands

	Name       string
	Number     string
	Width      string
	Height     string
	Resolution int64

	Scale      int64
	Datum      string
	Projection string
	ProjParam  string
	ProjIndex  string
	Parallel   string
	Skew       string
	TextAngle  string
	Units      string
	Sounding   string
	PitchX     float64
	PitchY     float64

	Extra []string // ADD1, ADD2, ... lines in order

	Refs       []calib.TiePoint
	PhaseShift float64
	Border     []calib.Point
	DatumShift [2]float64
}

// Build derives a header from buf.
//
// Header commands in the CR field are applied to buf before any other
// field is read, so the values they add take part in every lookup that
// follows. Missing fields fall back to defaults; Build never fails.
func Build(buf *calib.Buffer, opts Options) *Header {
	h := &Header{Banner: opts.Banner}

	scale := buf.FieldInt(calib.KeyScale, 0)
	dx := buf.FieldFloat(calib.KeyPitchX, 0)
	dy := buf.FieldFloat(calib.KeyPitchY, 0)
	h.Scale = scale.Raw()
	h.PitchX, h.PitchY = dx.Raw(), dy.Raw()
	h.Resolution = Resolution(scale, dx, dy)

	pr := buf.FieldInt(calib.KeyProjection, 0)
	h.Projection = ProjectionLabel(pr)

	units := buf.FieldInt(calib.KeyUnits, 0)
	if !units.Valid {
		units = buf.FieldInt(calib.KeyUnitsAlt, 0)
	}
	h.Units = UnitLabel(units)

	h.Comments = applyComment(buf)

	h.ProjParam = numericOr(buf, calib.KeyProjParam, Unknown)
	h.ProjIndex = numericOr(buf, calib.KeyProjIndex, Unknown)
	h.Parallel = numericOr(buf, calib.KeyParallel, Unknown)
	h.Skew = numericOr(buf, calib.KeySkew, DefaultSkew)
	h.TextAngle = numericOr(buf, calib.KeyTextAngle, DefaultTextAngle)
	h.Sounding = buf.Field(calib.KeySounding)
	if h.Sounding == "" {
		h.Sounding = Unknown
	}

	lon0 := buf.FieldFloat(calib.KeyLon0, 0)
	if lon0.Valid && ProjectionCode(pr) == ProjectionTransverseMercator && h.ProjParam == Unknown {
		h.ProjParam = formatFloat(lon0.Value, headerPrecision)
	}

	h.Name = buf.Field(calib.KeyName)
	h.Number = buf.Field(calib.KeyNumber)
	h.Width = buf.Field(calib.KeyWidth)
	h.Height = buf.Field(calib.KeyHeight)
	h.Datum = buf.Field(calib.KeyDatum)

	for n := 1; ; n++ {
		line := buf.Field(calib.AddKey(n))
		if line == "" {
			break
		}
		h.Extra = append(h.Extra, line)
	}

	h.Refs = buf.TiePoints()
	h.PhaseShift = PhaseShift(h.Refs)
	h.Border = buf.Boundary()
	h.DatumShift = [2]float64{
		buf.FieldFloat(calib.KeyDatumShift, 0).Raw() * 3600.0,
		buf.FieldFloat(calib.KeyDatumShift, 1).Raw() * 3600.0,
	}
	return h
}

// numericOr returns the raw value of key when its first sub-field is a
// number, otherwise def.
func numericOr(buf *calib.Buffer, key, def string) string {
	if !buf.FieldFloat(key, 0).Valid {
		return def
	}
	return buf.Field(key)
}

// WriteTo writes the header text to w.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	p := func(format string, args ...interface{}) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	if h.Banner != "" {
		p("! %s", h.Banner)
	}
	for _, c := range h.Comments {
		p("! %s", c)
	}

	p("VER/2.0")
	p("BSB/NA=%s", h.Name)
	p("    NU=%s,RA=%s,%s,DU=%d", h.Number, h.Width, h.Height, h.Resolution)
	p("KNP/SC=%d,GD=%s,PR=%s,PP=%s", h.Scale, h.Datum, h.Projection, h.ProjParam)
	p("    PI=%s,SP=%s,SK=%s,TA=%s", h.ProjIndex, h.Parallel, h.Skew, h.TextAngle)
	p("    UN=%s,SD=%s", h.Units, h.Sounding)
	p("    DX=%s,DY=%s", formatFloat(h.PitchX, headerPrecision), formatFloat(h.PitchY, headerPrecision))
	for _, line := range h.Extra {
		p("%s", line)
	}
	p("OST/1")

	for i, r := range h.Refs {
		p("REF/%d,%d,%d,%s,%s", i+1, r.X, r.Y,
			formatFloat(r.Lat, coordPrecision), formatFloat(r.Lon, coordPrecision))
	}
	p("CPH/%s", formatPhase(h.PhaseShift))
	for i, v := range h.Border {
		p("PLY/%d,%s,%s", i+1, formatFloat(v.Lat, coordPrecision), formatFloat(v.Lon, coordPrecision))
	}
	p("DTM/%s,%s", formatFloat(h.DatumShift[0], coordPrecision), formatFloat(h.DatumShift[1], coordPrecision))

	err := bw.Flush()
	return cw.n, err
}

func formatPhase(v float64) string {
	if v == 0 {
		return "0.0"
	}
	return "180.0"
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
