package store

import (
	"context"
	"fmt"

	"github.com/mkondo/go-todo-service/internal/config"
	"github.com/mkondo/go-todo-service/internal/docstore"
	"github.com/mkondo/go-todo-service/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	SequenceRepository SequenceRepository
	UserRepository     UserRepository
	TodoRepository     TodoRepository
}

// NewStorages opens the configured document-store driver and wires the
// repositories on top of it. Both entity repositories share one sequence
// repository so ids of all kinds come from the same counters collection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		ds  docstore.Store
		err error
	)

	switch cfg.Driver {
	case config.StorageDriverMemory:
		log.Info().Msg("using in-memory document store")
		ds = docstore.NewMemoryStore()
	case config.StorageDriverRedis, "":
		ds, err = docstore.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating document store: %w", err)
	}

	sequences := NewSequenceRepository(ds, log)

	return &Storages{
		SequenceRepository: sequences,
		UserRepository:     NewUserRepository(ds, sequences, log),
		TodoRepository:     NewTodoRepository(ds, sequences, log),
	}, nil
}
