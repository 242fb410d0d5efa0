package adapter

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultArchiveCacheSize = 16

// ArchiveReader reads entries out of zip-format archives (jar, zip). Open
// readers are kept in an LRU cache and closed when evicted.
type ArchiveReader struct {
	mu      sync.Mutex
	readers *lru.Cache[string, *zip.ReadCloser]
}

// NewArchiveReader creates an ArchiveReader that keeps at most size archives
// open at a time.
func NewArchiveReader(size int) (*ArchiveReader, error) {
	if size <= 0 {
		size = defaultArchiveCacheSize
	}

	readers, err := lru.NewWithEvict[string, *zip.ReadCloser](size, func(path string, rc *zip.ReadCloser) {
		if err := rc.Close(); err != nil {
			slog.Warn("Failed to close archive", "archive", path, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create archive cache: %w", err)
	}

	return &ArchiveReader{readers: readers}, nil
}

// Entries lists the regular file entries of archive in stored order.
func (r *ArchiveReader) Entries(ctx context.Context, archive string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rc, err := r.open(archive)
	if err != nil {
		return nil, err
	}

	entries := make([]string, 0, len(rc.File))
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}

		entries = append(entries, f.Name)
	}

	return entries, nil
}

// ReadEntry returns the bytes of inner inside archive.
func (r *ArchiveReader) ReadEntry(ctx context.Context, archive, inner string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rc, err := r.open(archive)
	if err != nil {
		return nil, err
	}

	f, err := rc.Open(inner)
	if err != nil {
		return nil, fmt.Errorf("open %s in %s: %w", inner, archive, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s in %s: %w", inner, archive, err)
	}

	return data, nil
}

// Close closes every cached archive.
func (r *ArchiveReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.readers.Purge()

	return nil
}

func (r *ArchiveReader) open(archive string) (*zip.ReadCloser, error) {
	if rc, ok := r.readers.Get(archive); ok {
		return rc, nil
	}

	rc, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", archive, err)
	}

	r.readers.Add(archive, rc)

	return rc, nil
}
