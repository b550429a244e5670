// Package service provides the domain services for DocFold.
package service

import (
	"context"
	"errors"

	"github.com/yndnr/docfold-go/internal/core/domain"
	"github.com/yndnr/docfold-go/internal/storage"
)

// TodoFolder is the fixed storage folder for todo documents.
const TodoFolder = "todos"

// emptyTodos is the value returned before a user has saved anything.
var emptyTodos = []byte("[]")

// TodoService is a thin specialization of the document store fixed to
// the "todos" folder, keyed by username. One document per user,
// whole-document replace on save.
type TodoService struct {
	docs storage.Store
}

// NewTodoService creates a todo service over the given document store.
func NewTodoService(docs storage.Store) *TodoService {
	return &TodoService{docs: docs}
}

// Get returns the user's todo document. A user with nothing stored
// yet gets an empty JSON array, not an error: absence means "no todos
// yet".
func (t *TodoService) Get(ctx context.Context, username string) ([]byte, error) {
	data, err := t.docs.Get(ctx, TodoFolder, username)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) || errors.Is(err, domain.ErrFolderNotFound) {
			return emptyTodos, nil
		}
		return nil, err
	}
	return data, nil
}

// Put replaces the user's todo document.
func (t *TodoService) Put(ctx context.Context, username string, value []byte) error {
	return t.docs.Put(ctx, TodoFolder, username, value)
}
