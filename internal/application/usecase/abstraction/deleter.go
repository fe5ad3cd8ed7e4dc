package abstraction

import "context"

// Deleter defines the interface for deleting a project and its image.
type Deleter interface {
	DeleteProject(ctx context.Context, id string) error
}
