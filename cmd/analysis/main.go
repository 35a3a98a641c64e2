//go:build analysis

// Command analysis times the fast modular operations across modulus bit
// sizes against the hardware-division baseline and renders the sweep as a
// go-echarts HTML page plus a JSON summary.
//
//	go run -tags analysis ./cmd/analysis -out Measure_Reports
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/bits"
	"os"
	"path/filepath"
	"time"

	"Barrett-Arith/modulus"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type opTiming struct {
	ModulusBits int     `json:"modulus_bits"`
	Modulus     uint64  `json:"modulus"`
	MeanNs      float64 `json:"mean_ns"`
	StdNs       float64 `json:"std_ns"`
	MinNs       float64 `json:"min_ns"`
	MaxNs       float64 `json:"max_ns"`
}

type summary struct {
	Iters   int                   `json:"iters_per_sample"`
	Samples int                   `json:"samples"`
	Ops     map[string][]opTiming `json:"ops"`
}

var sink uint64

// timeOp reports the per-call cost of f in nanoseconds, amortized over iters
// calls, sampled `samples` times.
func timeOp(f func(), iters, samples int) (mean, std, min, max float64) {
	vals := make([]float64, samples)
	for s := range vals {
		start := time.Now()
		for i := 0; i < iters; i++ {
			f()
		}
		vals[s] = float64(time.Since(start).Nanoseconds()) / float64(iters)
	}
	min, max = vals[0], vals[0]
	for _, v := range vals {
		mean += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean /= float64(samples)
	for _, v := range vals {
		std += (v - mean) * (v - mean)
	}
	std = math.Sqrt(std / float64(samples))
	return mean, std, min, max
}

func sweep(iters, samples int, bitSizes []int) *summary {
	out := &summary{Iters: iters, Samples: samples, Ops: map[string][]opTiming{}}
	for _, n := range bitSizes {
		q := uint64(1)<<n - 1
		b, err := modulus.New64(q)
		if err != nil {
			log.Fatalf("New64(%d): %v", q, err)
		}
		x := uint64(0x9e3779b97f4a7c15) % q
		y := uint64(0xc2b2ae3d27d4eb4f) % q

		ops := []struct {
			name string
			f    func()
		}{
			{"AddModFast", func() { sink = b.AddModFast(x, y) }},
			{"SubModFast", func() { sink = b.SubModFast(x, y) }},
			{"MulModFast", func() { sink = b.MulModFast(x, y) }},
			{"MulModFastLazy", func() { sink = b.MulModFastLazy(x, y) }},
			{"Div64Baseline", func() {
				hi, lo := bits.Mul64(x, y)
				_, sink = bits.Div64(hi, lo, q)
			}},
		}
		for _, op := range ops {
			mean, std, min, max := timeOp(op.f, iters, samples)
			out.Ops[op.name] = append(out.Ops[op.name], opTiming{
				ModulusBits: n, Modulus: q,
				MeanNs: mean, StdNs: std, MinNs: min, MaxNs: max,
			})
		}
		log.Printf("[analysis] %d-bit modulus done", n)
	}
	return out
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toLineItems(ts []opTiming) []opts.LineData {
	out := make([]opts.LineData, len(ts))
	for i, v := range ts {
		out[i] = opts.LineData{Value: v.MeanNs}
	}
	return out
}

func newSweepChart(s *summary, bitSizes []int) *charts.Line {
	xLabels := make([]string, len(bitSizes))
	for i, n := range bitSizes {
		xLabels[i] = fmt.Sprintf("%d", n)
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Barrett modular operations",
			Subtitle: fmt.Sprintf("mean ns/op, %d iters x %d samples", s.Iters, s.Samples),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Barrett sweep", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels)
	for _, name := range []string{"AddModFast", "SubModFast", "MulModFast", "MulModFastLazy", "Div64Baseline"} {
		line.AddSeries(name, toLineItems(s.Ops[name]))
	}
	return line
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func main() {
	iters := flag.Int("iters", 1_000_000, "operation calls per sample")
	samples := flag.Int("samples", 20, "samples per operation and bit size")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	var bitSizes []int
	for n := 8; n <= modulus.MaxModulusBits64; n += 2 {
		bitSizes = append(bitSizes, n)
	}

	s := sweep(*iters, *samples, bitSizes)

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("barrett_sweep_%s.json", ts))
	if err := saveJSON(jsonPath, s); err != nil {
		log.Printf("warn: save sweep: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(newSweepChart(s, bitSizes))
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("barrett_sweep_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Sweep page:", htmlPath)
	fmt.Println("Sweep JSON:", jsonPath)
}
