package aco

import (
	"github.com/sirupsen/logrus"
)

// Reporter receives progress events from a Colony. Implementations must not
// retain the slices they are given.
type Reporter interface {
	// Baseline is called once by NewColony with the cost of a random path
	// and the greedy L_min.
	Baseline(randomCost, lMin float64)
	StartGeneration(generation int)
	AntCompleted(generation, ant int, cost float64)
	EndGeneration(stats GenerationStats, best BestResult, improved bool)
	Complete(best BestResult)
}

// ReporterSet fans events out to several reporters in order.
type ReporterSet []Reporter

// Baseline forwards the baseline costs to every reporter.
func (rs ReporterSet) Baseline(randomCost, lMin float64) {
	for _, r := range rs {
		r.Baseline(randomCost, lMin)
	}
}

// StartGeneration forwards the start of a generation.
func (rs ReporterSet) StartGeneration(generation int) {
	for _, r := range rs {
		r.StartGeneration(generation)
	}
}

// AntCompleted forwards one finished path.
func (rs ReporterSet) AntCompleted(generation, ant int, cost float64) {
	for _, r := range rs {
		r.AntCompleted(generation, ant, cost)
	}
}

// EndGeneration forwards the generation summary.
func (rs ReporterSet) EndGeneration(stats GenerationStats, best BestResult, improved bool) {
	for _, r := range rs {
		r.EndGeneration(stats, best, improved)
	}
}

// Complete forwards the final best result.
func (rs ReporterSet) Complete(best BestResult) {
	for _, r := range rs {
		r.Complete(best)
	}
}

// LogReporter writes colony events as structured log entries. Per-ant costs
// are logged at debug level.
type LogReporter struct {
	Log logrus.FieldLogger
}

// NewLogReporter returns a reporter writing to log, or to the logrus
// standard logger when log is nil.
func NewLogReporter(log logrus.FieldLogger) *LogReporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogReporter{Log: log}
}

// Baseline logs the random path cost and L_min.
func (r *LogReporter) Baseline(randomCost, lMin float64) {
	r.Log.WithFields(logrus.Fields{
		"random_cost": randomCost,
		"l_min":       lMin,
	}).Info("Baseline computed")
}

// StartGeneration logs at debug level.
func (r *LogReporter) StartGeneration(generation int) {
	r.Log.WithField("generation", generation).Debug("Generation started")
}

// AntCompleted logs one ant's path cost at debug level.
func (r *LogReporter) AntCompleted(generation, ant int, cost float64) {
	r.Log.WithFields(logrus.Fields{
		"generation": generation,
		"ant":        ant,
		"cost":       cost,
	}).Debug("Ant path found")
}

// EndGeneration logs the cost statistics of the generation and the best
// cost so far.
func (r *LogReporter) EndGeneration(stats GenerationStats, best BestResult, improved bool) {
	entry := r.Log.WithFields(logrus.Fields{
		"generation": stats.Generation,
		"min":        stats.Min,
		"mean":       stats.Mean,
		"max":        stats.Max,
		"median":     stats.Median,
		"stdev":      stats.Stdev,
		"best":       best.Cost,
	})
	if improved {
		entry.Info("Updating best route")
		return
	}
	entry.Info("Generation finished")
}

// Complete logs the best path of the run.
func (r *LogReporter) Complete(best BestResult) {
	r.Log.WithFields(logrus.Fields{
		"cost":       best.Cost,
		"generation": best.Generation,
		"ant":        best.Walker,
	}).Infof("Done. Best route: %v", []int(best.Path))
}
