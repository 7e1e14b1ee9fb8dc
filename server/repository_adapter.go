package server

import (
	"context"

	"github.com/umputun/captions/pkg/domain"
	"github.com/umputun/captions/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// ListGenerations returns up to limit generation records, most recent first
func (r *RepositoryAdapter) ListGenerations(ctx context.Context, limit int) ([]domain.Generation, error) {
	return r.repos.Caption.ListGenerations(ctx, limit)
}

// GetGeneration returns a single generation record
func (r *RepositoryAdapter) GetGeneration(ctx context.Context, id string) (*domain.Generation, error) {
	return r.repos.Caption.GetGeneration(ctx, id)
}

// MarkFavorite marks generation record as favorite
func (r *RepositoryAdapter) MarkFavorite(ctx context.Context, id string, index int) error {
	return r.repos.Caption.MarkFavorite(ctx, id, index)
}

// Ping verifies storage connection
func (r *RepositoryAdapter) Ping(ctx context.Context) error {
	return r.repos.Ping(ctx)
}

// Name returns storage name
func (r *RepositoryAdapter) Name() string {
	return r.repos.Name()
}

// Collections returns stored collection names
func (r *RepositoryAdapter) Collections(ctx context.Context, limit int) ([]string, error) {
	return r.repos.Collections(ctx, limit)
}
