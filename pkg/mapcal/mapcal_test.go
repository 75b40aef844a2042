package mapcal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartcal = `; MapCal calibration
[ALPHA.BMP]
FN=ALPHA.BMP
NA=Alpha harbour
NU=101
WI=1000
HE=800
SC=50000
DX=0.1
DY=0.1
GD=WGS84
PR=1
DU=1
CR=Alpha notes
 BSBHDR KNP/SK=5.0
C1=0,0,45.5,12.0
C2=1000,800,45.0,12.5
B1=45.5,12.0
B2=45.0,12.5
DS=0.001,0.002

[BETA.BMP]
FN=BETA.BMP
NA=Beta bay
SC=20000
C1=0,0,-16.0,179.5
C2=800,600,-17.0,180.5
`

func newTestConverter(t *testing.T, opts Options) (Converter, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	out := &bytes.Buffer{}
	opts.Out = out
	opts.OutputDir = dir
	return NewConverter(opts), out, dir
}

func TestConvertAllRecords(t *testing.T) {
	conv, out, dir := newTestConverter(t, DefaultOptions())

	sum, err := conv.Convert(strings.NewReader(chartcal))
	require.NoError(t, err)
	assert.True(t, sum.OK())
	assert.Equal(t, 2, sum.Converted)
	assert.Equal(t, []string{
		filepath.Join(dir, "ALPHA.hdr"),
		filepath.Join(dir, "BETA.hdr"),
	}, sum.Files)
	assert.Contains(t, out.String(), "Create "+filepath.Join(dir, "ALPHA.hdr"))

	data, err := os.ReadFile(filepath.Join(dir, "ALPHA.hdr"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Equal(t, []string{
		"! " + DefaultBanner,
		"! Alpha notes",
		"VER/2.0",
		"BSB/NA=Alpha harbour",
		"    NU=101,RA=1000,800,DU=12700",
		"KNP/SC=50000,GD=WGS84,PR=MERCATOR,PP=UNKNOWN",
		"    PI=UNKNOWN,SP=UNKNOWN,SK=5.0,TA=90.0",
		"    UN=METERS,SD=UNKNOWN",
		"    DX=0.1,DY=0.1",
		"OST/1",
		"REF/1,0,0,45.5,12",
		"REF/2,1000,800,45,12.5",
		"CPH/0.0",
		"PLY/1,45.5,12",
		"PLY/2,45,12.5",
		"DTM/3.6,7.2",
	}, lines)

	beta, err := os.ReadFile(filepath.Join(dir, "BETA.hdr"))
	require.NoError(t, err)
	assert.Contains(t, string(beta), "CPH/180.0\n")
}

func TestConvertListMode(t *testing.T) {
	opts := DefaultOptions()
	opts.List = true
	conv, out, dir := newTestConverter(t, opts)

	sum, err := conv.Convert(strings.NewReader(chartcal))
	require.NoError(t, err)
	assert.True(t, sum.OK())
	assert.Equal(t, 2, sum.Listed)
	assert.Zero(t, sum.Converted)
	assert.Equal(t, "ALPHA          Alpha harbour\nBETA           Beta bay\n", out.String())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConvertSingle(t *testing.T) {
	opts := DefaultOptions()
	opts.Single = "BETA"
	opts.OutputName = "only.hdr"
	conv, _, dir := newTestConverter(t, opts)

	sum, err := conv.Convert(strings.NewReader(chartcal))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Converted)
	assert.Equal(t, 1, sum.Skipped)
	assert.FileExists(t, filepath.Join(dir, "only.hdr"))
	assert.NoFileExists(t, filepath.Join(dir, "ALPHA.hdr"))
}

func TestConvertSingleNoMatch(t *testing.T) {
	opts := DefaultOptions()
	opts.Single = "GAMMA"
	conv, _, dir := newTestConverter(t, opts)

	sum, err := conv.Convert(strings.NewReader(chartcal))
	require.NoError(t, err)
	assert.False(t, sum.OK())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConvertExtension(t *testing.T) {
	opts := DefaultOptions()
	opts.Extension = "bsb"
	conv, _, dir := newTestConverter(t, opts)

	_, err := conv.Convert(strings.NewReader(chartcal))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "ALPHA.bsb"))
}

func TestConvertMalformed(t *testing.T) {
	conv, _, _ := newTestConverter(t, DefaultOptions())

	sum, err := conv.Convert(strings.NewReader("[A]\nFN=A\n[B]\n\n;x\n[C]\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Converted)

	_, err = conv.Convert(strings.NewReader(" starts with a continuation\n[A]\n"))
	assert.True(t, errors.Is(err, ErrBadCalibration))
}

func TestConvertBlankCommentLine(t *testing.T) {
	opts := DefaultOptions()
	opts.Banner = ""
	conv, _, dir := newTestConverter(t, opts)

	_, err := conv.Convert(strings.NewReader("[A.BMP]\nFN=A.BMP\nCR=first\n \n second\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "A.hdr"))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	assert.Equal(t, []string{"! first", "! ", "! second", "VER/2.0"}, lines[:4])

	_, err = conv.Convert(strings.NewReader("  \n[A.BMP]\nFN=A.BMP\n"))
	assert.ErrorIs(t, err, ErrBadCalibration)
}

func TestConvertFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.dir")
	conv := NewConverter(DefaultOptions())
	sum, err := conv.ConvertFile(path)
	assert.ErrorIs(t, err, ErrOpenInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, sum.OK())
	assert.EqualError(t, err, "Could not open file "+path)
}

func TestConvertInclude(t *testing.T) {
	opts := DefaultOptions()
	opts.Include = func(c Chart) bool { return c.Scale == 20000 }
	conv, _, dir := newTestConverter(t, opts)

	sum, err := conv.Convert(strings.NewReader(chartcal))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Converted)
	assert.FileExists(t, filepath.Join(dir, "BETA.hdr"))
	assert.Len(t, sum.Charts, 2)
}

func TestWriteAtomicCleansUpOnRenameFailure(t *testing.T) {
	orig := osRename
	osRename = func(string, string) error { return errors.New("rename failed") }
	defer func() { osRename = orig }()

	conv, _, dir := newTestConverter(t, DefaultOptions())
	_, err := conv.Convert(strings.NewReader("[A]\nFN=A\n"))

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "A", we.Chart)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should be removed")
}
