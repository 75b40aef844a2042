// Package main is the entry point for the mc2bsbh command.
// mc2bsbh converts the georeference records of a MapCal calibration file
// (CHARTCAL.DIR) into BSB chart headers.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/mapcal/internal/config"
	"github.com/beetlebugorg/mapcal/internal/logging"
	"github.com/beetlebugorg/mapcal/pkg/mapcal"
)

var version = mapcal.Version

// flags holds the command line switches of the root command.
type flags struct {
	debug    bool
	list     bool
	single   string
	ext      string
	outName  string
	outDir   string
	bbox     string
	minScale int
	maxScale int
	charset  string
	cfgPath  string
	logLevel string
	noBanner bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status:
// 0 when at least one record was converted or listed, 1 otherwise.
func run(args []string, stdout, stderr io.Writer) int {
	status := 0
	root := newRootCmd(stdout, stderr, &status)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return status
}

func newRootCmd(stdout, stderr io.Writer, status *int) *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "mc2bsbh [flags] <infile>",
		Short: fmt.Sprintf("mc2bsbh (%s): converts georeference format from MapCal to BSB header", version),
		Long: fmt.Sprintf(`mc2bsbh (%s): converts georeference format from MapCal to BSB header

<infile> is the output from MapCal, normally CHARTCAL.DIR. One header is
written per chart record, named after the record title.

Convert everything:     mc2bsbh CHARTCAL.DIR
List charts:            mc2bsbh -l CHARTCAL.DIR
Convert a single chart: mc2bsbh -s HARBOUR -o harbour.hdr CHARTCAL.DIR`, version),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			code, err := convert(cmd, f, args[0], stderr)
			*status = code
			return err
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	fl := rootCmd.Flags()
	fl.BoolVarP(&f.debug, "debug", "d", false, "debug mode: log every input line read")
	fl.BoolVarP(&f.list, "list", "l", false, "print the list of charts in <infile> instead of converting")
	fl.StringVarP(&f.single, "single", "s", "", "convert only the chart with this name")
	fl.StringVarP(&f.ext, "ext", "e", "", "header file extension (default from config, \"hdr\")")
	fl.StringVarP(&f.outName, "output", "o", "", "header file name, used for every converted chart")
	fl.StringVar(&f.outDir, "dir", "", "directory for header files")
	fl.StringVarP(&f.bbox, "bbox", "b", "", "only charts intersecting minLon,minLat,maxLon,maxLat")
	fl.IntVar(&f.minScale, "min-scale", 0, "with --bbox, skip charts smaller in scale than 1:N")
	fl.IntVar(&f.maxScale, "max-scale", 0, "with --bbox, skip charts larger in scale than 1:N")
	fl.StringVar(&f.charset, "charset", "", "input charset (windows-1252, iso-8859-1, cp437, cp850, raw)")
	fl.BoolVar(&f.noBanner, "no-banner", false, "omit the \"Created by\" comment line")
	rootCmd.PersistentFlags().StringVar(&f.cfgPath, "config", "", "config file path (default ./mc2bsbh.yaml or ~/.mc2bsbh.yaml)")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mc2bsbh %s\n", version)
		},
	})
	rootCmd.AddCommand(configCmd(f))

	return rootCmd
}

// convert runs one conversion and maps its outcome to an exit status.
func convert(cmd *cobra.Command, f *flags, input string, stderr io.Writer) (int, error) {
	cfg, err := config.Load(f.cfgPath)
	if err != nil {
		return 1, err
	}
	applyFlags(cmd, f, cfg)

	log, err := logging.New(stderr, logging.Config{Level: cfg.Logging.Level, Verbose: f.debug})
	if err != nil {
		return 1, err
	}

	out := cmd.OutOrStdout()
	opts := mapcal.DefaultOptions()
	opts.List = f.list
	opts.Single = f.single
	opts.Extension = cfg.Output.Extension
	opts.OutputName = f.outName
	opts.OutputDir = cfg.Output.Dir
	opts.Charset = cfg.Input.Charset
	opts.Debug = f.debug
	opts.Out = out
	opts.Logger = &log
	if !cfg.Banner {
		opts.Banner = ""
	}

	if f.bbox != "" {
		include, err := regionFilter(input, f, cfg.Input.Charset, log)
		if err != nil {
			return handleError(out, log, err)
		}
		opts.Include = include
	}

	sum, err := mapcal.NewConverter(opts).ConvertFile(input)
	if err != nil {
		return handleError(out, log, err)
	}
	if !sum.OK() {
		return 1, nil
	}
	return 0, nil
}

// applyFlags lets explicitly set flags override the configuration.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("ext") {
		cfg.Output.Extension = f.ext
	}
	if fl.Changed("dir") {
		cfg.Output.Dir = f.outDir
	}
	if fl.Changed("charset") {
		cfg.Input.Charset = f.charset
	}
	if fl.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if f.noBanner {
		cfg.Banner = false
	}
}

// regionFilter indexes the input and accepts only charts the --bbox
// query returns.
func regionFilter(input string, f *flags, charset string, log zerolog.Logger) (func(mapcal.Chart) bool, error) {
	region, err := mapcal.ParseBounds(f.bbox)
	if err != nil {
		return nil, err
	}
	idx, err := mapcal.BuildIndexFromFile(input, charset)
	if err != nil {
		return nil, err
	}

	keep := make(map[int]bool)
	for _, c := range idx.Query(region, mapcal.QueryOptions{MinScale: f.minScale, MaxScale: f.maxScale}) {
		keep[c.Index] = true
	}
	log.Debug().Int("charts", idx.Count()).Int("matching", len(keep)).Msg("region filter built")

	return func(c mapcal.Chart) bool { return keep[c.Index] }, nil
}

// handleError reports a failed run. An unreadable input file is reported
// but still exits 0; malformed input exits 1.
func handleError(out io.Writer, log zerolog.Logger, err error) (int, error) {
	switch {
	case errors.Is(err, mapcal.ErrOpenInput):
		fmt.Fprintln(out, err)
		return 0, nil
	case errors.Is(err, mapcal.ErrBadCalibration):
		log.Debug().Err(err).Msg("malformed calibration input")
		fmt.Fprintln(out, mapcal.ErrBadCalibration)
		return 1, nil
	}
	return 1, err
}
