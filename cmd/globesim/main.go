// Package main is the entry point for the globe orbital simulator. It loads
// a system definition and reports where every body is, in both cartesian and
// geographic coordinates, as simulated time advances.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/logger"
	"github.com/Faultbox/globe/internal/orbit"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== globesim ===")

	system, err := orbit.LoadSystem(cfg.System.File)
	if err != nil {
		logger.Error("failed to load system", zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar.Infof("system %s: reach %.0f km",
		system.Primary.Name, system.Radius().Kilometers())

	stepper := &orbit.Stepper{System: system, Step: cfg.Simulation.Step.Duration()}
	for stepper.Elapsed <= cfg.Simulation.Duration.Duration() {
		elapsed := stepper.Elapsed
		state := stepper.Next()

		logger.Sugar.Infof("t=%s", elapsed)
		reportState(cfg, system, state)
	}
}

// reportState logs the state of every body in the system, walking the
// definition and its state snapshot in lockstep.
func reportState(cfg *config.Config, system *orbit.System, state orbit.State) {
	logger.Sugar.Infof("  %s: pos=%s km spin=%.1f°", state.Body, state.Position, state.Rotation)

	for i := range system.Secondary {
		child := &system.Secondary[i]
		childState := state.Secondary[i]

		track, err := orbit.GroundTrack(system.Primary, state, childState)
		if err != nil {
			logger.Error("ground track failed",
				zap.String("body", childState.Body), zap.Error(err))
			continue
		}
		logger.Sugar.Infof("  %s over %s: %s, v=%.2f km/s",
			childState.Body, state.Body, track,
			childState.Velocity.KilometersPerSecond())

		trail := orbit.Trail(state, childState, cfg.Simulation.TrailSegments)
		logger.Debug("orbit trail sampled",
			zap.String("body", childState.Body),
			zap.Int("points", len(trail)))

		reportState(cfg, child, childState)
	}
}
