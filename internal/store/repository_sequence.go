package store

import (
	"context"
	"fmt"

	"github.com/mkondo/go-todo-service/internal/docstore"
	"github.com/mkondo/go-todo-service/internal/logger"
)

// sequenceRepository implements [SequenceRepository] on top of the document
// store's atomic counter primitive. There is deliberately no in-process
// state: correctness must hold across multiple service instances, so the
// increment happens in the store itself.
type sequenceRepository struct {
	store  docstore.Store
	logger *logger.Logger
}

// NewSequenceRepository constructs a [SequenceRepository] backed by the
// given document store.
func NewSequenceRepository(store docstore.Store, logger *logger.Logger) SequenceRepository {
	logger.Debug().Msg("creating sequence repository")
	return &sequenceRepository{
		store:  store,
		logger: logger,
	}
}

// Next atomically increments the counter for kind by 1 and returns the new
// value. No retry policy: store unavailability propagates to the caller.
func (r *sequenceRepository) Next(ctx context.Context, kind string) (int64, error) {
	log := logger.FromContext(ctx)

	value, err := r.store.Increment(ctx, kind, 1)
	if err != nil {
		log.Err(err).Str("kind", kind).Msg("sequence increment failed")
		return 0, fmt.Errorf("sequence increment for %q failed: %w", kind, err)
	}

	return value, nil
}
