package emit

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/viant/afs"
)

// Write stores serialized output at URL, creating parent directories as
// needed. Callers serialize first, so nothing is written when any earlier
// stage failed.
func Write(ctx context.Context, URL string, data []byte) error {
	fs := afs.New()
	if err := fs.Upload(ctx, URL, os.FileMode(0644), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", URL, err)
	}
	return nil
}
