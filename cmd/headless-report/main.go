package main

import (
	"flag"
	"fmt"

	"github.com/Garsondee/zolyx/internal/render"
	"github.com/Garsondee/zolyx/internal/report"
	"github.com/Garsondee/zolyx/internal/sim"
)

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var autopilot string
	var fireRatio float64
	var level int
	var metricsPath string
	var pngPath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 20000, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&autopilot, "autopilot", "random", "input source: random or idle")
	flag.Float64Var(&fireRatio, "fire-ratio", 0.3, "chance the random autopilot starts a trail")
	flag.IntVar(&level, "level", 0, "zero-based starting level")
	flag.StringVar(&metricsPath, "metrics", "", "write Prometheus text metrics to this file")
	flag.StringVar(&pngPath, "png", "", "save the final frame of the last run to this PNG")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if _, err := newSource(autopilot, 0, fireRatio); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Zolyx Report ===\n")
	fmt.Printf("autopilot=%s runs=%d ticks=%d seed_base=%d seed_step=%d level=%d\n\n", autopilot, runs, ticks, seedBase, seedStep, level)

	metrics := report.NewMetrics()
	all := make([]report.RunStats, 0, runs)
	var last *sim.Sim
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		src, _ := newSource(autopilot, seed, fireRatio)
		rs, s := report.Play(i+1, seed, ticks, src, sim.WithLevel(level))
		all = append(all, rs)
		metrics.Observe(rs)
		last = s
		fmt.Print(rs.Format())
	}

	fmt.Print(report.FormatAggregate(all))

	if metricsPath != "" {
		if err := metrics.WriteTextfile(metricsPath); err != nil {
			fmt.Printf("error: %v\n", err)
		} else {
			fmt.Printf("metrics written to %s\n", metricsPath)
		}
	}
	if pngPath != "" && last != nil {
		if err := render.SavePNG(pngPath, last, 4); err != nil {
			fmt.Printf("error: %v\n", err)
		} else {
			fmt.Printf("final frame written to %s\n", pngPath)
		}
	}
}

// newSource builds the autopilot named by the -autopilot flag.
func newSource(name string, seed int64, fireRatio float64) (sim.InputSource, error) {
	switch name {
	case "random":
		return sim.NewRandomWalk(seed, fireRatio), nil
	case "idle":
		return sim.Hold(sim.InputNone), nil
	}
	return nil, fmt.Errorf("unsupported autopilot %q (supported: random, idle)", name)
}
