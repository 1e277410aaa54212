package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics accumulates run results in a private registry that can be
// written out in the text exposition format for node_exporter's textfile
// collector.
type Metrics struct {
	reg *prometheus.Registry

	runs      prometheus.Counter
	gameOvers prometheus.Counter
	fills     prometheus.Counter
	claimed   prometheus.Counter
	sparks    prometheus.Counter
	levels    prometheus.Counter
	deaths    *prometheus.CounterVec
	score     prometheus.Histogram
	lastLevel prometheus.Gauge
}

// NewMetrics registers the report metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zolyx_runs_total",
			Help: "Headless games played",
		}),
		gameOvers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zolyx_game_overs_total",
			Help: "Games that ended with no lives left",
		}),
		fills: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zolyx_fills_total",
			Help: "Trails closed into territory",
		}),
		claimed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zolyx_cells_claimed_total",
			Help: "Cells turned into claimed territory",
		}),
		sparks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zolyx_sparks_killed_total",
			Help: "Sparks destroyed",
		}),
		levels: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zolyx_levels_completed_total",
			Help: "Levels completed",
		}),
		deaths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zolyx_deaths_total",
			Help: "Lives lost",
		}, []string{"cause"}), // collision, out_of_time
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "zolyx_run_score",
			Help:    "Display score at the end of a run",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000},
		}),
		lastLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "zolyx_last_run_level",
			Help: "Level reached by the most recent run",
		}),
	}
	m.reg.MustRegister(m.runs, m.gameOvers, m.fills, m.claimed, m.sparks,
		m.levels, m.deaths, m.score, m.lastLevel)
	return m
}

// Observe adds one run.
func (m *Metrics) Observe(rs RunStats) {
	m.runs.Inc()
	if rs.GameOver {
		m.gameOvers.Inc()
	}
	m.fills.Add(float64(rs.Fills))
	m.claimed.Add(float64(rs.CellsClaimed))
	m.sparks.Add(float64(rs.SparksKilled))
	m.levels.Add(float64(rs.LevelsCompleted))
	m.deaths.WithLabelValues("collision").Add(float64(rs.DeathsCollision))
	m.deaths.WithLabelValues("out_of_time").Add(float64(rs.DeathsTimeout))
	m.score.Observe(float64(rs.Score))
	m.lastLevel.Set(float64(rs.FinalLevel + 1))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes every metric to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
