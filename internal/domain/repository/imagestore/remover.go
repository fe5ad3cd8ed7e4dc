package imagestore

import "context"

type Remover interface {
	Remove(ctx context.Context, publicID string) error
}
