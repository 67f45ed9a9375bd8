package downloader

import (
	"context"

	"github.com/tvidder/tvidder/internal/utils"
)

// AssetSink streams a remote asset to a local path.
type AssetSink interface {
	// Fetch downloads assetURL to destPath, creating the destination
	// directory if needed, and returns the number of bytes written.
	// A failed fetch never leaves a partial file behind.
	Fetch(ctx context.Context, assetURL, destPath string) (int64, *utils.AppError)
}
