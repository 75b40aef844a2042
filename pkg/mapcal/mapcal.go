package mapcal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/beetlebugorg/mapcal/internal/bsb"
	"github.com/beetlebugorg/mapcal/internal/calib"
)

// Converter turns MapCal calibration files into BSB headers.
//
// Create a converter with NewConverter and call Convert or ConvertFile.
type Converter interface {
	// Convert reads every record from r and lists or converts it
	// according to the options.
	//
	// Malformed input stops the run and returns an error matching
	// ErrBadCalibration; the summary then covers the records handled
	// before the error.
	Convert(r io.Reader) (*Summary, error)

	// ConvertFile opens path and calls Convert. An error matching
	// ErrOpenInput is returned when the file cannot be opened.
	ConvertFile(path string) (*Summary, error)
}

// Summary reports what a run did.
type Summary struct {
	Converted int      // headers written
	Listed    int      // records printed in list mode
	Skipped   int      // records rejected by Single or Include
	Files     []string // headers written, in order
	Charts    []Chart  // every record seen, in order
}

// OK reports whether at least one record was converted or listed.
func (s *Summary) OK() bool {
	return s.Converted+s.Listed > 0
}

// NewConverter creates a converter.
//
// Example:
//
//	conv := mapcal.NewConverter(mapcal.DefaultOptions())
//	sum, err := conv.ConvertFile("CHARTCAL.DIR")
func NewConverter(opts Options) Converter {
	c := &converter{opts: opts, out: opts.Out, log: opts.Logger}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.log == nil {
		nop := zerolog.Nop()
		c.log = &nop
	}
	return c
}

type converter struct {
	opts Options
	out  io.Writer
	log  *zerolog.Logger
}

func (c *converter) ConvertFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Summary{}, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	c.log.Debug().Str("input", path).Msg("reading calibration file")
	return c.Convert(f)
}

func (c *converter) Convert(r io.Reader) (*Summary, error) {
	sum := &Summary{}
	readOpts := calib.ReadOptions{Charset: c.opts.Charset}
	if c.opts.Debug {
		readOpts.OnLine = func(n int, text string) {
			c.log.Debug().Int("line", n).Str("text", text).Msg("read line")
		}
	}

	err := calib.ReadRecords(r, func(buf *calib.Buffer) error {
		return c.dispatch(buf, sum)
	}, readOpts)
	if err != nil {
		return sum, err
	}

	c.log.Info().
		Int("converted", sum.Converted).
		Int("listed", sum.Listed).
		Int("skipped", sum.Skipped).
		Msg("calibration file processed")
	return sum, nil
}

// dispatch lists, converts or skips one record.
func (c *converter) dispatch(buf *calib.Buffer, sum *Summary) error {
	chart := newChart(len(sum.Charts), buf)
	sum.Charts = append(sum.Charts, chart)

	if c.opts.Include != nil && !c.opts.Include(chart) {
		sum.Skipped++
		c.log.Debug().Str("chart", chart.Identifier).Msg("skipped record outside filter")
		return nil
	}

	if c.opts.List {
		fmt.Fprintf(c.out, "%-15s%s\n", chart.Identifier, chart.Name)
		sum.Listed++
		return nil
	}

	if c.opts.Single != "" && chart.Identifier != c.opts.Single {
		sum.Skipped++
		return nil
	}

	path, err := c.convert(buf, chart)
	if err != nil {
		return err
	}
	sum.Converted++
	sum.Files = append(sum.Files, path)
	return nil
}

func (c *converter) convert(buf *calib.Buffer, chart Chart) (string, error) {
	bopts := bsb.Options{
		Extension:  c.opts.Extension,
		OutputName: c.opts.OutputName,
		Banner:     c.opts.Banner,
	}
	path := bsb.OutputPath(buf, bopts)
	if c.opts.OutputDir != "" {
		if err := os.MkdirAll(c.opts.OutputDir, 0755); err != nil {
			return "", &WriteError{Chart: chart.Identifier, Path: c.opts.OutputDir, Err: err}
		}
		path = filepath.Join(c.opts.OutputDir, path)
	}

	fmt.Fprintf(c.out, "Create %s\n", path)

	h := bsb.Build(buf, bopts)
	if err := writeAtomic(path, h, 0644); err != nil {
		return "", &WriteError{Chart: chart.Identifier, Path: path, Err: err}
	}

	c.log.Debug().
		Str("chart", chart.Identifier).
		Str("file", path).
		Int("refs", len(h.Refs)).
		Int("ply", len(h.Border)).
		Float64("cph", h.PhaseShift).
		Msg("converted record")
	return path, nil
}
