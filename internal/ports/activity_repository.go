package ports

import (
	"context"

	"github.com/bnema/tabzen/internal/domain"
)

type ActivityRepository interface {
	List(ctx context.Context) ([]domain.ActivityEntry, error)
	Put(ctx context.Context, entry domain.ActivityEntry) error
	Delete(ctx context.Context, id domain.TabID) error
}
