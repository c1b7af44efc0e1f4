package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// renderChart draws per-operation latency as grouped bars: one group per
// workload, one bar per structure.
func renderChart(path string, results []benchResult) error {
	var structures, workloads []string
	byKey := map[string]int64{}
	for _, r := range results {
		if !contains(structures, r.Structure) {
			structures = append(structures, r.Structure)
		}
		if !contains(workloads, r.Workload) {
			workloads = append(workloads, r.Workload)
		}
		byKey[r.Structure+"/"+r.Workload] = r.LatencyNs
	}

	p := plot.New()
	p.Title.Text = "latency per operation"
	p.Y.Label.Text = "ns/op"

	width := vg.Points(18)
	for i, s := range structures {
		values := make(plotter.Values, 0, len(workloads))
		for _, w := range workloads {
			values = append(values, float64(byKey[s+"/"+w]))
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("bar chart for %s: %w", s, err)
		}
		bars.Offset = width * vg.Length(i-len(structures)/2)
		bars.Color = plotutil.Color(i)
		p.Add(bars)
		p.Legend.Add(s, bars)
	}
	p.Legend.Top = true
	p.NominalX(workloads...)

	return p.Save(7*vg.Inch, 4*vg.Inch, path)
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
