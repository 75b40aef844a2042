package mapcal

import (
	"io"

	"github.com/rs/zerolog"
)

// Options configures a Converter.
type Options struct {
	// List prints one line per record (identifier and name) instead of
	// converting anything.
	List bool

	// Single restricts conversion to the record whose identifier (FN
	// without extension) equals it. Empty converts every record.
	Single string

	// Extension overrides the default "hdr" output extension.
	Extension string

	// OutputName is used verbatim as the output file name for every
	// converted record. Combine it with Single to write one header.
	OutputName string

	// OutputDir is prepended to output file names when set.
	OutputDir string

	// Charset names the input encoding (windows-1252, iso-8859-1, ...).
	// Empty passes bytes through unchanged.
	Charset string

	// Banner is written as the first comment line of every header.
	// Empty disables it.
	Banner string

	// Debug logs every input line at debug level.
	Debug bool

	// Include, when set, is asked about every record after the Single
	// filter; records it rejects are skipped in both list and convert
	// mode. See ChartIndex for region filtering.
	Include func(Chart) bool

	// Out receives listings and "Create <file>" notices. Defaults to
	// os.Stdout.
	Out io.Writer

	// Logger receives structured progress events. Nil disables logging.
	Logger *zerolog.Logger
}

// Version is reported in the default banner.
const Version = "beta09"

// DefaultBanner is the banner line written by the command line tool.
const DefaultBanner = "Created by mc2bsbh " + Version + " - Use at your own risk!"

// DefaultOptions returns options that convert every record with the
// default banner.
func DefaultOptions() Options {
	return Options{
		Banner: DefaultBanner,
	}
}
