package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/tabzen/internal/adapters/host/cdp"
	"github.com/bnema/tabzen/internal/adapters/host/memory"
	"github.com/bnema/tabzen/internal/adapters/logging"
	tabsrender "github.com/bnema/tabzen/internal/adapters/render/tabs"
	tomlrepo "github.com/bnema/tabzen/internal/adapters/repo/toml"
	"github.com/bnema/tabzen/internal/application"
	"github.com/bnema/tabzen/internal/ports"
	"github.com/spf13/pflag"
)

var errUnknownHostDriver = errors.New("unknown host driver")

type tabHost interface {
	ports.TabHost
	ports.TabEventSource
}

type app struct {
	logger       *slog.Logger
	host         tabHost
	tracker      *application.ActivityTracker
	engine       *application.PolicyEngine
	settings     *application.SettingsStore
	tabs         *application.TabService
	settingsPath string
	interval     time.Duration
	tabsRenderer func(application.TabListing, tabsrender.RenderOptions) (string, error)

	closers []func() error
}

type wireOptions struct {
	hostFlag *pflag.Flag
	stderr   io.Writer
}

func (a *app) wire(opts wireOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.hostFlag != nil && opts.hostFlag.Changed {
		cfg.Set("host.driver", opts.hostFlag.Value.String())
	}

	logger, closeLog, err := logging.New(logging.Options{
		Path:       cfg.GetString("log.path"),
		Level:      cfg.GetString("log.level"),
		MaxSizeMB:  cfg.GetInt("log.max_size_mb"),
		MaxBackups: cfg.GetInt("log.max_backups"),
		Stderr:     opts.stderr,
	})
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}
	a.logger = logger
	a.closers = append(a.closers, closeLog)

	settingsRepo, err := tomlrepo.NewSettingsRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire settings repository: %w", err)
	}
	activityRepo, err := tomlrepo.NewActivityRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire activity repository: %w", err)
	}

	switch driver := strings.ToLower(strings.TrimSpace(cfg.GetString("host.driver"))); driver {
	case hostDriverMemory:
		host, err := memory.Open(cfg.GetString("host.memory.fixture"))
		if err != nil {
			return fmt.Errorf("wire memory host: %w", err)
		}
		a.host = host
	case hostDriverCDP:
		host := cdp.New(cdp.Config{
			ControlURL:  cfg.GetString("host.cdp.url"),
			ExtensionID: cfg.GetString("host.cdp.extension_id"),
			BridgePath:  cfg.GetString("host.cdp.bridge_path"),
			Timeout:     cfg.GetDuration("host.cdp.timeout"),
		}, logger)
		a.host = host
		a.closers = append(a.closers, host.Close)
	default:
		return fmt.Errorf("%w %q (want %s or %s)", errUnknownHostDriver, driver, hostDriverCDP, hostDriverMemory)
	}

	clock := ports.SystemClock{}
	a.tracker = application.NewActivityTracker(activityRepo, clock, logger)
	a.engine = application.NewPolicyEngine(a.host, a.tracker, clock, logger)
	a.settings = application.NewSettingsStore(settingsRepo, logger)
	a.tabs = application.NewTabService(a.host, a.tracker, a.engine)
	a.settingsPath = settingsRepo.Path()
	a.interval = passInterval(cfg)
	a.tabsRenderer = tabsrender.Render

	return nil
}

// close releases the host connection and the log file, last wired first.
func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil

	return errors.Join(errs...)
}
