package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
)

// SettingsStore owns the settings snapshot and fans out changes to subscribers.
type SettingsStore struct {
	repo   ports.SettingsRepository
	logger *slog.Logger

	mu      sync.RWMutex
	current domain.Settings
	subs    map[int]chan domain.Settings
	nextSub int
}

func NewSettingsStore(repo ports.SettingsRepository, logger *slog.Logger) *SettingsStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SettingsStore{
		repo:    repo,
		logger:  logger,
		current: domain.DefaultSettings(),
		subs:    map[int]chan domain.Settings{},
	}
}

// Load returns the persisted settings, or defaults when nothing usable is persisted.
func (s *SettingsStore) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	settings, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		settings = settings.Sanitize()
	case errors.Is(err, domain.ErrSettingsNotFound):
		settings = domain.DefaultSettings()
	case ctx.Err() != nil:
		return domain.Settings{}, ctx.Err()
	default:
		s.logger.Warn("settings unreadable, using defaults", "error", err)
		settings = domain.DefaultSettings()
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()

	return settings, nil
}

func (s *SettingsStore) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Save validates and persists settings, then notifies subscribers.
func (s *SettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	settings = settings.Normalize()
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.publish(settings)
	return nil
}

func (s *SettingsStore) Update(ctx context.Context, mutate func(*domain.Settings)) (domain.Settings, error) {
	settings, err := s.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	mutate(&settings)
	if err := s.Save(ctx, settings); err != nil {
		return domain.Settings{}, err
	}

	return s.Current(), nil
}

func (s *SettingsStore) Reset(ctx context.Context) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if err := s.Save(ctx, defaults); err != nil {
		return domain.Settings{}, err
	}

	return defaults, nil
}

// ExcludeDomain accepts either a full URL or a bare hostname.
func (s *SettingsStore) ExcludeDomain(ctx context.Context, urlOrHost string) (string, error) {
	host, err := hostFromInput(urlOrHost)
	if err != nil {
		return "", err
	}

	_, err = s.Update(ctx, func(settings *domain.Settings) {
		*settings = settings.WithExcludedDomain(host)
	})
	if err != nil {
		return "", err
	}

	return host, nil
}

func (s *SettingsStore) IncludeDomain(ctx context.Context, host string) error {
	_, err := s.Update(ctx, func(settings *domain.Settings) {
		*settings = settings.WithoutExcludedDomain(host)
	})

	return err
}

// Subscribe returns a channel that always holds the latest change. Call the
// returned func to unsubscribe.
func (s *SettingsStore) Subscribe() (<-chan domain.Settings, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan domain.Settings, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Watch reloads settings whenever the repository reports a change, until ctx is done.
func (s *SettingsStore) Watch(ctx context.Context) error {
	changes, err := s.repo.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-changes:
			if !ok {
				return nil
			}

			previous := s.Current()
			settings, err := s.Load(ctx)
			if err != nil {
				return err
			}
			if settings.Equal(previous) {
				continue
			}

			s.logger.Info("settings changed on disk",
				"inactivity_threshold", settings.InactivityThreshold,
				"auto_pin_enabled", settings.AutoPinEnabled,
				"group_action", settings.GroupAction,
			)
			s.publish(settings)
		}
	}
}

func (s *SettingsStore) publish(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = settings
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- settings
	}
}

func hostFromInput(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.Contains(trimmed, "://") {
		host, err := domain.Hostname(trimmed)
		if err != nil {
			return "", fmt.Errorf("exclude %q: %w", raw, err)
		}
		return host, nil
	}

	host, err := domain.Hostname("https://" + trimmed)
	if err != nil || strings.ContainsAny(trimmed, "/?#@") {
		return "", fmt.Errorf("exclude %q: %w", raw, domain.ErrInvalidURL)
	}

	return host, nil
}
