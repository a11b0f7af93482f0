package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"deck-finder/core/deck"
	"deck-finder/core/merge"
	"deck-finder/core/storage"
)

// ErrUnavailable reports that artifacts are missing or unreadable.
var ErrUnavailable = errors.New("catalog artifacts unavailable")

// errCatalogName rejects shard operations addressed at the unified catalog.
var errCatalogName = errors.New("shard name must not be empty")

// Repository stores per-shard artifacts and the unified catalog.
type Repository interface {
	// SaveShard writes the store and index of one shard.
	SaveShard(ctx context.Context, shard deck.Shard) error
	// LoadShard reads the artifacts of the named shard.
	LoadShard(ctx context.Context, name string) (deck.Shard, error)
	// DeleteShard removes the store and index of one shard. Missing files
	// are not an error.
	DeleteShard(ctx context.Context, name string) error
	// ListShards returns the names of every persisted shard, sorted.
	ListShards(ctx context.Context) ([]string, error)
	// SaveCatalog writes the unified store and index.
	SaveCatalog(ctx context.Context, catalog deck.Shard) error
	// LoadCatalog reads the unified store and index.
	LoadCatalog(ctx context.Context) (deck.Shard, error)
}

const (
	storePrefix = "decks"
	indexPrefix = "index"
	ext         = ".json"
)

// StoreFile returns the Document Store file name of a shard.
// An empty shard name addresses the unified catalog.
func StoreFile(shard string) string {
	if shard == "" {
		return storePrefix + ext
	}
	return storePrefix + "_" + shard + ext
}

// IndexFile returns the Inverted Index file name of a shard.
// An empty shard name addresses the unified catalog.
func IndexFile(shard string) string {
	if shard == "" {
		return indexPrefix + ext
	}
	return indexPrefix + "_" + shard + ext
}

// shardName extracts the shard name from a Document Store file name.
func shardName(file string) (string, bool) {
	p := storePrefix + "_"
	if !strings.HasPrefix(file, p) || !strings.HasSuffix(file, ext) {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(file, p), ext)
	return name, name != ""
}

// pairedShards keeps the shards that have both files present, sorted.
func pairedShards(files []string) []string {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}
	var names []string
	for _, f := range files {
		name, ok := shardName(f)
		if ok && present[IndexFile(name)] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeStore renders a Document Store as indented JSON.
func EncodeStore(store deck.Store) ([]byte, error) {
	if store == nil {
		store = deck.Store{}
	}
	return encode(store)
}

// EncodeIndex renders an Inverted Index as indented JSON.
func EncodeIndex(index deck.Index) ([]byte, error) {
	if index == nil {
		index = deck.Index{}
	}
	return encode(index)
}

// DecodeShard parses a store and index pair into a shard.
func DecodeShard(name string, store, index []byte) (deck.Shard, error) {
	shard := deck.NewShard(name)
	if err := json.Unmarshal(store, &shard.Store); err != nil {
		return deck.Shard{}, fmt.Errorf("%w: failed to decode store of %s: %v", ErrUnavailable, name, err)
	}
	if err := json.Unmarshal(index, &shard.Index); err != nil {
		return deck.Shard{}, fmt.Errorf("%w: failed to decode index of %s: %v", ErrUnavailable, name, err)
	}
	if shard.Store == nil {
		shard.Store = deck.Store{}
	}
	if shard.Index == nil {
		shard.Index = deck.Index{}
	}
	return shard, nil
}

// shardOrCatalog names the shard decoded from the given file suffix.
func shardOrCatalog(name string) string {
	if name == "" {
		return merge.CatalogName
	}
	return name
}

func encodeShard(shard deck.Shard) (store, index []byte, err error) {
	store, err = EncodeStore(shard.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode store: %w", err)
	}
	index, err = EncodeIndex(shard.Index)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return store, index, nil
}

// New builds the repository selected by cfg. The storage configuration is
// only used by the s3 backend.
func New(cfg Config, storageCfg storage.Config) (Repository, error) {
	switch cfg.Backend {
	case BackendLocal, "":
		return NewFileRepository(cfg.Dir), nil
	case BackendS3:
		client, err := storage.NewClient(storageCfg)
		if err != nil {
			return nil, err
		}
		return NewBucketRepository(client, storageCfg.Bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported catalog backend %q", cfg.Backend)
	}
}
