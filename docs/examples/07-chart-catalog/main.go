package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mapcal/pkg/mapcal"
)

func main() {
	idx, err := mapcal.BuildIndexFromFile("CHARTCAL.DIR", "windows-1252")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Catalog contains %d charts\n\n", idx.Count())

	for _, c := range idx.All() {
		fmt.Printf("Chart: %s (%s)\n", c.Identifier, c.Name)
		fmt.Printf("  Scale: 1:%d\n", c.Scale)
		if b, ok := c.Bounds(); ok {
			fmt.Printf("  Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
				b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
		}
	}

	// Charts covering the Venice lagoon, largest scale first
	venice := mapcal.Bounds{MinLon: 12.2, MaxLon: 12.5, MinLat: 45.3, MaxLat: 45.5}
	matches := idx.Query(venice, mapcal.QueryOptions{})
	fmt.Printf("\nCharts covering the region: %d\n", len(matches))
	for _, c := range matches {
		fmt.Printf("  %s 1:%d\n", c.Identifier, c.Scale)
	}
}
