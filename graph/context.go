package graph

import (
	"context"

	"github.com/citasya/citas-api/models"
)

// Viewer is the authenticated caller, extracted from the request token by
// the auth middleware.
type Viewer struct {
	ID   uint
	Role models.Role
}

type viewerKey struct{}

func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

func ViewerFrom(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(Viewer)
	return v, ok
}
