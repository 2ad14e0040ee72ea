package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mkondo/go-todo-service/internal/docstore"
	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/utils"
	"github.com/mkondo/go-todo-service/models"
)

// userIDIndex is the secondary index scoping todos to their owning user.
const userIDIndex = "userId"

// todoRepository is the document-store-backed implementation of
// [TodoRepository]. Todos live in the "todos" collection under the physical
// key (TodoID, CreatedAt) — the creation timestamp is the sort component of
// the key and never changes after the first write.
type todoRepository struct {
	store     docstore.Store
	sequences SequenceRepository
	logger    *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// document store, using sequences for id allocation.
func NewTodoRepository(store docstore.Store, sequences SequenceRepository, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		store:     store,
		sequences: sequences,
		logger:    logger,
	}
}

func todoKey(todo models.Todo) docstore.Key {
	return docstore.Key{
		Partition: strconv.FormatInt(todo.TodoID, 10),
		Sort:      todo.CreatedAt,
	}
}

func ownerEntry(todo models.Todo) docstore.IndexEntry {
	return docstore.IndexEntry{
		Index: userIDIndex,
		Value: strconv.FormatInt(todo.UserID, 10),
	}
}

func (r *todoRepository) put(ctx context.Context, todo models.Todo) error {
	doc, err := json.Marshal(todo)
	if err != nil {
		return fmt.Errorf("marshaling todo failed: %w", err)
	}

	if err := r.store.Put(ctx, todo.TableName(), todoKey(todo), doc, ownerEntry(todo)); err != nil {
		return fmt.Errorf("persisting todo failed: %w", err)
	}
	return nil
}

// GetTodo performs a bare point lookup by id. Ownership is not checked
// here; the authorization gate in the service layer is responsible for it.
func (r *todoRepository) GetTodo(ctx context.Context, todoID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	docs, err := r.store.Query(ctx, models.Todo{}.TableName(), strconv.FormatInt(todoID, 10))
	if err != nil {
		log.Err(err).Int64("todoId", todoID).Msg("todo lookup failed")
		return models.Todo{}, fmt.Errorf("todo lookup failed: %w", err)
	}

	if len(docs) == 0 {
		return models.Todo{}, ErrTodoNotFound
	}

	var todo models.Todo
	if err := json.Unmarshal(docs[0], &todo); err != nil {
		log.Err(err).Int64("todoId", todoID).Msg("unmarshaling todo failed")
		return models.Todo{}, fmt.Errorf("unmarshaling todo failed: %w", err)
	}

	return todo, nil
}

// GetTodos returns every todo owned by userID via the owner index.
func (r *todoRepository) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	docs, err := r.store.QueryIndex(ctx, models.Todo{}.TableName(), userIDIndex, strconv.FormatInt(userID, 10))
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("todo list by owner failed")
		return nil, fmt.Errorf("todo list by owner failed: %w", err)
	}

	todos := make([]models.Todo, 0, len(docs))
	for _, doc := range docs {
		var todo models.Todo
		if err := json.Unmarshal(doc, &todo); err != nil {
			log.Err(err).Int64("userId", userID).Msg("unmarshaling todo failed")
			return nil, fmt.Errorf("unmarshaling todo failed: %w", err)
		}
		todos = append(todos, todo)
	}

	return todos, nil
}

// CreateTodo allocates the next id of kind "todos" and persists a fresh
// record: due date normalized to canonical form, status set {StatusActive},
// created and updated timestamps stamped with the same value, owner set to
// ownerID.
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo, ownerID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	nextID, err := r.sequences.Next(ctx, todo.TableName())
	if err != nil {
		return models.Todo{}, err
	}

	now := utils.FormatDate(time.Now())
	created := models.Todo{
		TodoID:     nextID,
		Title:      todo.Title,
		Detail:     todo.Detail,
		ToDate:     utils.NormalizeDate(todo.ToDate),
		TodoStatus: []models.Status{models.StatusActive},
		CreatedAt:  now,
		UpdatedAt:  now,
		UserID:     ownerID,
	}

	if err := r.put(ctx, created); err != nil {
		log.Err(err).Int64("todoId", created.TodoID).Msg("todo creation failed")
		return models.Todo{}, err
	}

	return created, nil
}

// UpdateTodo overwrites the mutable fields of an existing record. The
// current record is fetched first so id, owner and creation timestamp are
// carried over from the store, never from the caller. Last writer wins;
// there is no optimistic concurrency check.
func (r *todoRepository) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	current, err := r.GetTodo(ctx, todo.TodoID)
	if err != nil {
		return models.Todo{}, err
	}

	current.Title = todo.Title
	current.Detail = todo.Detail
	current.ToDate = utils.NormalizeDate(todo.ToDate)
	current.TodoStatus = todo.TodoStatus
	current.UpdatedAt = utils.FormatDate(time.Now())

	if err := r.put(ctx, current); err != nil {
		log.Err(err).Int64("todoId", current.TodoID).Msg("todo update failed")
		return models.Todo{}, err
	}

	return current, nil
}

// DeleteTodo removes the record keyed by (TodoID, CreatedAt) and its owner
// index entry. Absence is not an error at this layer.
func (r *todoRepository) DeleteTodo(ctx context.Context, todo models.Todo) error {
	log := logger.FromContext(ctx)

	if err := r.store.Delete(ctx, todo.TableName(), todoKey(todo), ownerEntry(todo)); err != nil {
		log.Err(err).Int64("todoId", todo.TodoID).Msg("todo deletion failed")
		return fmt.Errorf("todo deletion failed: %w", err)
	}

	return nil
}

// SearchTodos scans the whole collection and filters to records that are
// owned by userID and contain searchWord in title or detail (case-sensitive
// substring match), then keeps only records whose status set intersects
// statusIDs. An empty status filter intersects nothing and yields an empty
// result. Each record appears at most once even when more
// than one requested status matches it.
func (r *todoRepository) SearchTodos(ctx context.Context, searchWord string, statusIDs []models.Status, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	docs, err := r.store.Scan(ctx, models.Todo{}.TableName())
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("todo search scan failed")
		return nil, fmt.Errorf("todo search scan failed: %w", err)
	}

	results := make([]models.Todo, 0)
	for _, doc := range docs {
		var todo models.Todo
		if err := json.Unmarshal(doc, &todo); err != nil {
			log.Err(err).Int64("userId", userID).Msg("unmarshaling todo failed")
			return nil, fmt.Errorf("unmarshaling todo failed: %w", err)
		}

		if todo.UserID != userID {
			continue
		}
		if !strings.Contains(todo.Title, searchWord) && !strings.Contains(todo.Detail, searchWord) {
			continue
		}

		for _, statusID := range statusIDs {
			if todo.HasStatus(statusID) {
				results = append(results, todo)
				break
			}
		}
	}

	return results, nil
}
