package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"deck-finder/core/deck"
)

// FileRepository keeps artifacts in a local directory.
type FileRepository struct {
	dir string
}

// NewFileRepository creates a repository rooted at dir.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Dir returns the artifact directory.
func (r *FileRepository) Dir() string {
	return r.dir
}

func (r *FileRepository) SaveShard(ctx context.Context, shard deck.Shard) error {
	return r.save(ctx, shard.Name, shard)
}

func (r *FileRepository) SaveCatalog(ctx context.Context, catalog deck.Shard) error {
	return r.save(ctx, "", catalog)
}

func (r *FileRepository) LoadShard(ctx context.Context, name string) (deck.Shard, error) {
	return r.load(ctx, name)
}

func (r *FileRepository) LoadCatalog(ctx context.Context) (deck.Shard, error) {
	return r.load(ctx, "")
}

func (r *FileRepository) DeleteShard(ctx context.Context, name string) error {
	if name == "" {
		return errCatalogName
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, file := range []string{StoreFile(name), IndexFile(name)} {
		err := os.Remove(filepath.Join(r.dir, file))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", file, err)
		}
	}
	return nil
}

func (r *FileRepository) ListShards(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list artifacts in %s: %w", r.dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	return pairedShards(files), nil
}

func (r *FileRepository) save(ctx context.Context, shard string, s deck.Shard) error {
	store, index, err := encodeShard(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(r.dir, StoreFile(shard)), store); err != nil {
		return err
	}
	return writeAtomic(filepath.Join(r.dir, IndexFile(shard)), index)
}

func (r *FileRepository) load(ctx context.Context, shard string) (deck.Shard, error) {
	if err := ctx.Err(); err != nil {
		return deck.Shard{}, err
	}
	store, err := os.ReadFile(filepath.Join(r.dir, StoreFile(shard)))
	if err != nil {
		return deck.Shard{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	index, err := os.ReadFile(filepath.Join(r.dir, IndexFile(shard)))
	if err != nil {
		return deck.Shard{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return DecodeShard(shardOrCatalog(shard), store, index)
}

// writeAtomic writes data to a temp file in the target directory, syncs it
// and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
