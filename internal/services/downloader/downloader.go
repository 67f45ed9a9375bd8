package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/tvidder/tvidder/internal/config"
	"github.com/tvidder/tvidder/internal/utils"
)

type Service struct {
	httpClient  *http.Client
	cfg         *config.DownloadConfig
	progressOut io.Writer
}

// NewService creates an asset downloader. Progress rendering is written to
// progressOut so tests can pass io.Discard.
func NewService(cfg *config.DownloadConfig, progressOut io.Writer) *Service {
	return &Service{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:         cfg,
		progressOut: progressOut,
	}
}

// Fetch streams the asset to destPath in chunks, advancing a progress bar
// per chunk. Any mid-stream failure removes the partial file.
func (s *Service) Fetch(ctx context.Context, assetURL, destPath string) (int64, *utils.AppError) {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, utils.NewFileSystemError(err, dir)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return 0, utils.NewNetworkError(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, utils.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, utils.NewNetworkError(fmt.Errorf("unexpected asset status %d", resp.StatusCode))
	}

	file, err := os.Create(destPath)
	if err != nil {
		return 0, utils.NewFileSystemError(err, destPath)
	}

	// ContentLength is -1 when the server does not declare a size, which
	// switches the bar to an indeterminate spinner.
	bar := s.newProgressBar(resp.ContentLength)

	written, appErr := s.copyChunks(file, resp.Body, bar)
	if appErr != nil {
		file.Close()
		os.Remove(destPath)
		return 0, appErr
	}

	if err := file.Close(); err != nil {
		os.Remove(destPath)
		return 0, utils.NewFileSystemError(err, destPath)
	}
	bar.Finish()

	utils.LogInfo(ctx, "Download complete", utils.Fields{
		"path":  destPath,
		"bytes": written,
	})
	return written, nil
}

func (s *Service) copyChunks(file *os.File, body io.Reader, bar *progressbar.ProgressBar) (int64, *utils.AppError) {
	buf := make([]byte, s.cfg.ChunkSize)
	var written int64
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := file.Write(buf[:n]); writeErr != nil {
				return written, utils.NewFileSystemError(writeErr, file.Name())
			}
			written += int64(n)
			bar.Add(n)
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, utils.NewNetworkError(readErr)
		}
	}
}

func (s *Service) newProgressBar(total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(s.progressOut),
		progressbar.OptionSetDescription("downloading"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
