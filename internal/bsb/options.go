package bsb

import "github.com/beetlebugorg/mapcal/internal/calib"

// DefaultExtension is the extension of generated header files.
const DefaultExtension = "hdr"

// Options configures header generation.
type Options struct {
	// Extension replaces DefaultExtension when OutputName is empty.
	Extension string

	// OutputName, when set, is used verbatim as the output file name for
	// every converted record.
	OutputName string

	// Banner is written as the first comment line. Empty disables it.
	Banner string
}

// OutputPath returns the header file name for the record in buf: the
// record title without brackets or extension, plus the output extension.
func OutputPath(buf *calib.Buffer, opts Options) string {
	if opts.OutputName != "" {
		return opts.OutputName
	}
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	return buf.BaseName() + "." + ext
}
