package mapcal

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/mapcal/internal/calib"
)

// ChartIndex provides spatial queries over the records of a calibration
// file.
//
// Records are indexed by the bounds of their boundary polygon (or tie
// points) in an R-tree. Records without usable coordinates are kept in
// All but never returned by Query.
//
// Example:
//
//	idx, err := mapcal.BuildIndexFromFile("CHARTCAL.DIR", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	charts := idx.Query(mapcal.Bounds{
//	    MinLon: 12.0, MaxLon: 13.0,
//	    MinLat: 45.0, MaxLat: 46.0,
//	}, mapcal.QueryOptions{})
type ChartIndex struct {
	charts []Chart
	rtree  *rtreego.Rtree
}

// QueryOptions controls spatial query behavior.
type QueryOptions struct {
	// MinScale filters charts by minimum scale (larger scale, smaller denominator).
	// Only charts at this scale or larger are returned.
	// Example: MinScale=20000 includes 1:20000 and 1:10000, excludes 1:50000.
	MinScale int

	// MaxScale filters charts by maximum scale (smaller scale, larger denominator).
	// Only charts at this scale or smaller are returned.
	MaxScale int
}

// indexedChart adapts a Chart to rtreego.Spatial.
type indexedChart struct {
	chart Chart
}

// Bounds method for rtreego.Spatial interface.
func (e indexedChart) Bounds() rtreego.Rect {
	return toRect(e.chart.GeoBounds)
}

// minExtent keeps single-point and single-line charts indexable; rtreego
// rejects rectangles with a zero side.
const minExtent = 1e-9

func toRect(b Bounds) rtreego.Rect {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{
		max(b.MaxLon-b.MinLon, minExtent),
		max(b.MaxLat-b.MinLat, minExtent),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// BuildIndex creates an index over the given charts.
func BuildIndex(charts []Chart) *ChartIndex {
	// 2D, min=25 children, max=50 children
	rtree := rtreego.NewTree(2, 25, 50)
	for _, c := range charts {
		if c.HasBounds {
			rtree.Insert(indexedChart{chart: c})
		}
	}
	return &ChartIndex{charts: charts, rtree: rtree}
}

// BuildIndexFromReader reads every record of a calibration stream and
// indexes it. Nothing is written.
func BuildIndexFromReader(r io.Reader, charset string) (*ChartIndex, error) {
	var charts []Chart
	err := calib.ReadRecords(r, func(buf *calib.Buffer) error {
		charts = append(charts, newChart(len(charts), buf))
		return nil
	}, calib.ReadOptions{Charset: charset})
	if err != nil {
		return nil, err
	}
	return BuildIndex(charts), nil
}

// BuildIndexFromFile is BuildIndexFromReader on the named file.
func BuildIndexFromFile(path, charset string) (*ChartIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	idx, err := BuildIndexFromReader(f, charset)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", path, err)
	}
	return idx, nil
}

// Query returns charts intersecting the given bounds.
//
// Results are ordered by scale (larger scale, smaller denominator first;
// charts without a scale last), then by position in the input.
func (idx *ChartIndex) Query(bounds Bounds, opts QueryOptions) []Chart {
	var result []Chart
	for _, spatial := range idx.rtree.SearchIntersect(toRect(bounds)) {
		c := spatial.(indexedChart).chart

		// Apply scale filters
		if opts.MinScale > 0 && c.Scale > opts.MinScale {
			continue
		}
		if opts.MaxScale > 0 && c.Scale < opts.MaxScale {
			continue
		}
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		si, sj := result[i].Scale, result[j].Scale
		if (si == 0) != (sj == 0) {
			return sj == 0
		}
		if si != sj {
			return si < sj
		}
		return result[i].Index < result[j].Index
	})
	return result
}

// Count returns the total number of charts in the index.
func (idx *ChartIndex) Count() int {
	return len(idx.charts)
}

// Bounds returns the union of all chart bounds in the index.
func (idx *ChartIndex) Bounds() Bounds {
	var (
		bounds Bounds
		seen   bool
	)
	for _, c := range idx.charts {
		if !c.HasBounds {
			continue
		}
		if !seen {
			bounds, seen = c.GeoBounds, true
			continue
		}
		bounds = bounds.Union(c.GeoBounds)
	}
	return bounds
}

// All returns all charts in input order.
func (idx *ChartIndex) All() []Chart {
	return idx.charts
}
