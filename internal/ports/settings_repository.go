package ports

import (
	"context"

	"github.com/bnema/tabzen/internal/domain"
)

type SettingsRepository interface {
	// Load returns domain.ErrSettingsNotFound when nothing was persisted yet.
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
	// Watch signals on the returned channel whenever the persisted settings change.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
