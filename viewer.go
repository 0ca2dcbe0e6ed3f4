package butdiff

import "context"

// Viewer displays content sections to the user.
type Viewer interface {
	// View displays the sections and blocks until the user exits.
	View(ctx context.Context, title string, sections []ContentSection) error
}
