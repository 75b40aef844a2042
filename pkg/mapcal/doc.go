// Package mapcal converts MapCal calibration files into BSB text headers.
//
// MapCal stores the georeference of scanned charts in a single text file,
// usually CHARTCAL.DIR, with one bracket-titled record per chart. Raster
// chart viewers instead expect a BSB (KAP) header next to each image. This
// package reads the calibration file and writes one header per record.
//
// # Basic Usage
//
//	conv := mapcal.NewConverter(mapcal.DefaultOptions())
//	sum, err := conv.ConvertFile("CHARTCAL.DIR")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d headers\n", sum.Converted)
//
// # Single Charts
//
// Set Options.Single to the chart identifier (the FN field without its
// extension) to convert only that record, and Options.OutputName to choose
// the header file name:
//
//	opts := mapcal.DefaultOptions()
//	opts.Single = "HARBOUR"
//	opts.OutputName = "harbour.hdr"
//
// # Listing
//
// With Options.List set nothing is written; each record prints its
// identifier and chart name instead.
//
// # Header Commands
//
// The record comment (CR) is copied into the header as "!" comment lines.
// Comment lines starting with BSBHDR are commands instead:
//
//	BSBHDR KNP/PP=45.0,SK=1.5   supplies KNP parameters the record lacks
//	BSBHDR BSB/NU=1234          supplies BSB parameters the record lacks
//	BSBHDR CED/SE=1998          adds the line verbatim before OST/1
//
// Parameters supplied this way never replace a value the record already
// defines.
//
// # Regions
//
// ChartIndex places every record in an R-tree by its boundary polygon, so
// a calibration file with many charts can be filtered by area:
//
//	idx, _ := mapcal.BuildIndexFromFile("CHARTCAL.DIR", "")
//	keep := map[int]bool{}
//	for _, c := range idx.Query(region, mapcal.QueryOptions{}) {
//	    keep[c.Index] = true
//	}
//	opts.Include = func(c mapcal.Chart) bool { return keep[c.Index] }
package mapcal
