// treebench measures the bstree container against two external ordered
// indexes, the google/btree in-memory B-Tree and the cockroachdb/pebble
// LSM store, under a sequential load and three mixed workloads. Results
// go to a CSV file and, optionally, a grouped bar chart.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type benchResult struct {
	Structure string
	Workload  string
	Ops       int
	LatencyNs int64
}

func main() {
	var (
		n       = flag.Int("n", 200000, "keys per suite")
		out     = flag.String("out", "treebench.csv", "CSV output path")
		plotOut = flag.String("plot", "", "optional PNG chart output path")
		dir     = flag.String("dir", "", "scratch directory for pebble (default: a temp dir)")
	)
	flag.Parse()

	scratch := *dir
	if scratch == "" {
		var err error
		scratch, err = os.MkdirTemp("", "treebench")
		if err != nil {
			log.Fatalf("scratch dir: %v", err)
		}
		defer os.RemoveAll(scratch)
	}

	pdb, err := openPebble(filepath.Join(scratch, "pebble"))
	if err != nil {
		log.Fatalf("open pebble: %v", err)
	}
	defer pdb.Close()

	indexes := []index{
		newBstreeIndex(),
		newBtreeIndex(32),
		pdb,
	}

	var results []benchResult
	for _, idx := range indexes {
		fmt.Printf("testing %s\n", idx.name())
		results = append(results, runSuite(idx, *n)...)
	}

	if err := writeCSV(*out, results); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)

	if *plotOut != "" {
		if err := renderChart(*plotOut, results); err != nil {
			log.Fatalf("render chart: %v", err)
		}
		fmt.Printf("wrote %s\n", *plotOut)
	}
}

func runSuite(idx index, n int) []benchResult {
	suite := []benchResult{}

	// load in shuffled order; a sequential load would degenerate the
	// unbalanced tree into a chain and drown the mixed suites in O(n)
	// point lookups
	keys := rand.New(rand.NewSource(1)).Perm(n)

	start := time.Now()
	for _, k := range keys {
		idx.insert(int64(k))
	}
	suite = append(suite, benchResult{
		Structure: idx.name(),
		Workload:  "load",
		Ops:       n,
		LatencyNs: time.Since(start).Nanoseconds() / int64(n),
	})

	for _, w := range []workload{oltp, olap, reporting} {
		ops := n / 2
		if w == reporting {
			ops = 100
		}
		start = time.Now()
		executeWorkload(idx, w, ops)
		suite = append(suite, benchResult{
			Structure: idx.name(),
			Workload:  string(w),
			Ops:       ops,
			LatencyNs: time.Since(start).Nanoseconds() / int64(ops),
		})
	}
	return suite
}

func writeCSV(path string, results []benchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Structure", "Workload", "Ops", "LatencyNs"}); err != nil {
		return err
	}
	for _, r := range results {
		err := w.Write([]string{
			r.Structure,
			r.Workload,
			strconv.Itoa(r.Ops),
			strconv.FormatInt(r.LatencyNs, 10),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
