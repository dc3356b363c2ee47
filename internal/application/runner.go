package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const DefaultPassInterval = 60 * time.Second

type RunnerConfig struct {
	Events   ports.TabEventSource
	Tracker  *ActivityTracker
	Engine   *PolicyEngine
	Settings *SettingsStore
	Interval time.Duration
	Logger   *slog.Logger
	// OnReport is called after every finished pass, including skipped ones.
	OnReport func(domain.Report, error)
}

// Runner is the long-running process: it feeds host events into the tracker
// and runs a policy pass on every tick, never two at a time.
type Runner struct {
	events   ports.TabEventSource
	tracker  *ActivityTracker
	engine   *PolicyEngine
	settings *SettingsStore
	interval time.Duration
	logger   *slog.Logger
	onReport func(domain.Report, error)

	inFlight *semaphore.Weighted
	passes   sync.WaitGroup
}

func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPassInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{
		events:   cfg.Events,
		tracker:  cfg.Tracker,
		engine:   cfg.Engine,
		settings: cfg.Settings,
		interval: cfg.Interval,
		logger:   cfg.Logger,
		onReport: cfg.OnReport,
		inFlight: semaphore.NewWeighted(1),
	}
}

// Run blocks until ctx is cancelled or a loop fails. Cancellation is not an error.
func (r *Runner) Run(ctx context.Context) error {
	if _, err := r.settings.Load(ctx); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	events, err := r.events.Events(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to tab events: %w", err)
	}

	r.logger.Info("runner started", "interval", r.interval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.consumeEvents(gctx, events) })
	g.Go(func() error { return r.settings.Watch(gctx) })
	g.Go(func() error { return r.followSettings(gctx) })
	g.Go(func() error { return r.tick(gctx) })

	err = g.Wait()
	r.passes.Wait()
	r.logger.Info("runner stopped")

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	return err
}

// TriggerPass starts a pass unless one is still running, and reports whether it started.
func (r *Runner) TriggerPass(ctx context.Context) bool {
	if !r.inFlight.TryAcquire(1) {
		r.logger.Warn("previous policy pass still running, skipping tick")
		return false
	}

	settings := r.settings.Current()
	r.passes.Add(1)
	go func() {
		defer r.passes.Done()
		defer r.inFlight.Release(1)

		report, err := r.engine.RunPass(ctx, settings)
		if err != nil {
			r.logger.Error("policy pass failed", "pass_id", report.PassID, "error", err)
		}
		if r.onReport != nil {
			r.onReport(report, err)
		}
	}()

	return true
}

// Wait blocks until every started pass has finished.
func (r *Runner) Wait() {
	r.passes.Wait()
}

func (r *Runner) tick(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.TriggerPass(ctx)
		}
	}
}

func (r *Runner) consumeEvents(ctx context.Context, events <-chan domain.TabEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errors.New("tab event stream closed")
			}
			if err := r.tracker.HandleEvent(ctx, event); err != nil {
				r.logger.Warn("handle tab event failed", "tab_id", event.TabID, "event", event.Kind, "error", err)
			}
		}
	}
}

func (r *Runner) followSettings(ctx context.Context) error {
	changes, unsubscribe := r.settings.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case settings := <-changes:
			r.logger.Info("settings snapshot updated",
				"inactivity_threshold", settings.InactivityThreshold,
				"auto_pin_enabled", settings.AutoPinEnabled,
				"excluded_domains", len(settings.ExcludedDomains),
			)
		}
	}
}
