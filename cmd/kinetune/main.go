package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/noble/config"
)

// EvalRow is one line of the tuning log.
type EvalRow struct {
	Eval          int     `csv:"eval"`
	Cost          float64 `csv:"cost"`
	SpeedGain     float64 `csv:"speed_gain"`
	SpeedRotation float64 `csv:"speed_rotation"`
	RotationLerp  float64 `csv:"rotation_lerp"`
	DecayLerp     float64 `csv:"decay_lerp"`
	FOVGain       float64 `csv:"fov_gain"`
	FOVLerp       float64 `csv:"fov_lerp"`
	GlowGain      float64 `csv:"glow_gain"`
}

func newEvalRow(eval int, cost float64, v []float64) *EvalRow {
	return &EvalRow{
		Eval: eval, Cost: cost,
		SpeedGain: v[0], SpeedRotation: v[1], RotationLerp: v[2], DecayLerp: v[3],
		FOVGain: v[4], FOVLerp: v[5], GlowGain: v[6],
	}
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxEvals := flag.Int("max-evals", 400, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	targets := DefaultTargets()
	flag.Float64Var(&targets.PeakFOV, "peak-fov", targets.PeakFOV, "Target FOV widening in degrees during a swipe")
	flag.Float64Var(&targets.PeakGlow, "peak-glow", targets.PeakGlow, "Target shader glow during a swipe")
	flag.Float64Var(&targets.SettleSec, "settle", targets.SettleSec, "Target seconds for the spin to settle")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	baseCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	params := NewParamVector()
	traces := DefaultTraces()
	evaluator := NewFitnessEvaluator(params, baseCfg, traces, targets)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}
	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	logPath := filepath.Join(*outputDir, "kinetune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestCost := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			clamped := params.Clamp(params.Denormalize(x))
			cost := evaluator.Evaluate(clamped)
			evalCount++

			if cost < bestCost {
				bestCost = cost
				bestParams = clamped
			}

			rows := []*EvalRow{newEvalRow(evalCount, cost, clamped)}
			if evalCount == 1 {
				err = gocsv.Marshal(rows, logFile)
			} else {
				err = gocsv.MarshalWithoutHeaders(rows, logFile)
			}
			if err != nil {
				log.Printf("failed to log eval %d: %v", evalCount, err)
			}

			if evalCount%20 == 0 {
				swipe := evaluator.Last()["swipe"]
				fmt.Printf("Eval %d/%d: cost=%.4f (best=%.4f) swipe fov=+%.1f glow=%.2f settle=%.1fs | %s\n",
					evalCount, *maxEvals, cost, bestCost,
					swipe.PeakFOV, swipe.PeakGlow, float64(swipe.SettleFrames)/60,
					time.Since(startTime).Round(time.Millisecond))
			}
			return cost
		},
	}

	fmt.Printf("Starting CMA-ES tuning with %d parameters, population=%d, max_evals=%d\n",
		dim, popSize, *maxEvals)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		log.Fatal("no evaluations completed")
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, time.Since(startTime).Round(time.Millisecond))
	fmt.Printf("Best cost: %.4f\n", bestCost)
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, bestParams[i])
	}

	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	params.ApplyToConfig(bestCfg, bestParams)

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}
