package toml

import (
	"context"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
	"github.com/spf13/viper"
)

const (
	settingsPathKey  = "settings.path"
	settingsFileName = "settings.toml"
)

type SettingsRepository struct {
	file *stateFile
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(cfg *viper.Viper) (*SettingsRepository, error) {
	file, err := newStateFile(cfg, settingsPathKey, settingsFileName)
	if err != nil {
		return nil, err
	}

	return &SettingsRepository{file: file}, nil
}

func (r *SettingsRepository) Path() string {
	return r.file.Path()
}

func (r *SettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	var file settingsFileSchema
	var found bool
	err := r.file.withReadLock(func() error {
		var err error
		found, err = r.file.decode(&file)
		return err
	})
	if err != nil {
		return domain.Settings{}, err
	}
	if !found || file.Settings == nil {
		return domain.Settings{}, domain.ErrSettingsNotFound
	}

	return fromSettingsSchema(*file.Settings), nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.file.withWriteLock(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.file.encode(settingsFileSchema{Settings: toSettingsSchema(settings)})
	})
}

func (r *SettingsRepository) Watch(ctx context.Context) (<-chan struct{}, error) {
	return watchFile(ctx, r.file.Path())
}
