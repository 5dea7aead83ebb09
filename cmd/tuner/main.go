// Package main searches for the environment parameter setting that reaches
// the Life stage fastest, using Nelder-Mead over headless simulation runs.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/genesis/config"
)

var paramNames = []string{"temperature", "energy", "turbulence"}

// formatDuration formats a duration as h/m/s for progress output.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int("max-ticks", 200000, "Tick cap per simulation run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 120, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewEvaluator(baseCfg, int32(*maxTicks), evalSeeds)

	// Log file
	logPath := filepath.Join(*outputDir, "tuner_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()
	logWriter.Write(append([]string{"eval", "cost"}, paramNames...))

	evalCount := 0
	bestCost := 1e18
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			cost := evaluator.Evaluate(x)
			evalCount++

			clamped := clampVector(x)
			if cost < bestCost {
				bestCost = cost
				bestParams = append([]float64(nil), clamped...)
			}

			row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.2f", cost)}
			for _, v := range clamped {
				row = append(row, fmt.Sprintf("%.4f", v))
			}
			logWriter.Write(row)
			logWriter.Flush()

			elapsed := time.Since(startTime)
			avgPerEval := elapsed / time.Duration(evalCount)
			remaining := time.Duration(*maxEvals-evalCount) * avgPerEval
			fmt.Printf("Eval %d/%d: cost=%.0f (best=%.0f) T=%.2f E=%.2f U=%.2f | elapsed: %s, ETA: %s\n",
				evalCount, *maxEvals, cost, bestCost,
				clamped[0], clamped[1], clamped[2],
				formatDuration(elapsed), formatDuration(remaining))

			return cost
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
	}

	// Middle of the parameter cube; NelderMead builds its own simplex.
	initX := []float64{0.5, 0.5, 0.1}

	fmt.Printf("Starting Nelder-Mead tuning, max_evals=%d, seeds=%d, ticks per run=%d\n",
		*maxEvals, *seeds, *maxTicks)

	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	if bestParams == nil {
		bestParams = clampVector(result.X)
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best cost: %.0f (ticks to Life, capped runs penalized)\n", bestCost)
	fmt.Println("\nBest parameters:")
	for i, name := range paramNames {
		fmt.Printf("  %s: %.4f\n", name, bestParams[i])
	}

	// Snapshot the base config next to the results for reproducibility.
	configOutPath := filepath.Join(*outputDir, "base_config.yaml")
	if err := baseCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write config snapshot: %v", err)
	}
}
