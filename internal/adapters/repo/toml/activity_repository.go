package toml

import (
	"context"
	"slices"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
	"github.com/spf13/viper"
)

const (
	activityPathKey  = "activity.path"
	activityFileName = "activity.toml"
)

type ActivityRepository struct {
	file *stateFile
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(cfg *viper.Viper) (*ActivityRepository, error) {
	file, err := newStateFile(cfg, activityPathKey, activityFileName)
	if err != nil {
		return nil, err
	}

	return &ActivityRepository{file: file}, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.ActivityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var file activityFileSchema
	err := r.file.withReadLock(func() error {
		var err error
		file, err = r.readSchema()
		return err
	})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, 0, len(file.TabActivity))
	for key, schema := range file.TabActivity {
		entry, err := fromTabActivitySchema(key, schema)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(a, b domain.ActivityEntry) int {
		return int(a.TabID) - int(b.TabID)
	})

	return entries, nil
}

func (r *ActivityRepository) Put(ctx context.Context, entry domain.ActivityEntry) error {
	return r.update(ctx, func(file *activityFileSchema) {
		file.TabActivity[tabKey(entry.TabID)] = toTabActivitySchema(entry)
	})
}

func (r *ActivityRepository) Delete(ctx context.Context, id domain.TabID) error {
	return r.update(ctx, func(file *activityFileSchema) {
		delete(file.TabActivity, tabKey(id))
	})
}

func (r *ActivityRepository) update(ctx context.Context, mutate func(*activityFileSchema)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.file.withWriteLock(func() error {
		file, err := r.readSchema()
		if err != nil {
			return err
		}

		mutate(&file)

		if err := ctx.Err(); err != nil {
			return err
		}

		return r.file.encode(file)
	})
}

func (r *ActivityRepository) readSchema() (activityFileSchema, error) {
	var file activityFileSchema
	if _, err := r.file.decode(&file); err != nil {
		return activityFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return activityFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
