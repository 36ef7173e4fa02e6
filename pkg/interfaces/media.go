package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// ImageResolver resolves the public URL for a stored image rendition. The
// portfolio core never touches image binaries; it only needs addresses for
// the named sizes a host registers (e.g. "portfolio-thumb",
// "portfolio-large").
type ImageResolver interface {
	// ImageURL returns the URL of the image rendered at the named size. A
	// missing image or rendition yields an empty URL together with a nil
	// error: rendering degrades to an empty link target rather than failing
	// a whole gallery.
	ImageURL(ctx context.Context, imageID uuid.UUID, size string) (string, error)

	// ImageTag returns the <img> markup for the image at the named size.
	// Implementations should include dimension and alt attributes when the
	// backing store knows them.
	ImageTag(ctx context.Context, imageID uuid.UUID, size string, alt string) (string, error)
}
