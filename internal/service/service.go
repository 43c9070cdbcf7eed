// Package service implements the transport-agnostic domain operations
// shared by the REST and GraphQL adapters: validation, authorization
// checks, and orchestration of persistence calls. Both adapters call into
// this layer and must see identical outcomes for identical input.
package service

import (
	"context"

	"inkpost/internal/auth"
	"inkpost/internal/models"
)

// ChangeNotifier receives post change events after successful mutations.
// Implementations are fire-and-forget; the service never checks delivery.
type ChangeNotifier interface {
	PostCreated(ctx context.Context, post *models.Post)
	PostUpdated(ctx context.Context, post *models.Post)
	PostDeleted(ctx context.Context, postID uint)
}

// ImageRemover deletes a stored image file, best-effort.
type ImageRemover interface {
	Remove(path string)
}

// requireActor rejects unauthenticated callers. Auth checks short-circuit
// before any validation runs.
func requireActor(actor *auth.Identity) error {
	if actor == nil {
		return models.NewUnauthenticatedError("Not authenticated")
	}
	return nil
}
