package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/beetlebugorg/mapcal/pkg/mapcal"
)

func convert(path string) (*mapcal.Summary, error) {
	opts := mapcal.DefaultOptions()
	opts.OutputDir = "headers"
	conv := mapcal.NewConverter(opts)

	sum, err := conv.ConvertFile(path)
	switch {
	case errors.Is(err, mapcal.ErrOpenInput):
		return nil, fmt.Errorf("calibration file not found: %s", path)
	case errors.Is(err, mapcal.ErrBadCalibration):
		// Records before the bad line have already been written
		log.Printf("Malformed %s after %d charts: %v", path, sum.Converted, err)
		return sum, err
	case err != nil:
		return nil, err
	}

	if !sum.OK() {
		log.Printf("Warning: %s contains no charts", path)
	}
	return sum, nil
}

func main() {
	sum, err := convert("CHARTCAL.DIR")
	if err != nil {
		log.Printf("Error: %v", err)
	} else {
		fmt.Printf("Successfully converted %d charts\n", sum.Converted)
	}

	// A continuation line with nothing before it is fatal
	bad := " continuation without a record\n[A]\nFN=A.BMP\n"
	_, err = mapcal.NewConverter(mapcal.DefaultOptions()).Convert(strings.NewReader(bad))
	if errors.Is(err, mapcal.ErrBadCalibration) {
		fmt.Fprintln(os.Stderr, "Expected error:", err)
	}
}
