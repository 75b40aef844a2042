package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mapcal/pkg/mapcal"
)

func main() {
	// Create converter
	conv := mapcal.NewConverter(mapcal.DefaultOptions())

	// Convert every chart in the calibration file
	sum, err := conv.ConvertFile("CHARTCAL.DIR")
	if err != nil {
		log.Fatal(err)
	}

	// Print what was written
	fmt.Printf("Charts: %d\n", len(sum.Charts))
	for _, path := range sum.Files {
		fmt.Printf("Header: %s\n", path)
	}
}
