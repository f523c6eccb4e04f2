package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"dalton/internal/diag"
	"dalton/internal/source"
	"dalton/internal/token"
)

// Current schema version - increment when DiskPayload format or the token set changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты токенизации на диске, ключ: sha256 содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is the position-complete form of token.Token without the filename.
type CachedToken struct {
	Kind  uint8
	Text  string
	Line  uint32
	Col   uint32
	Start uint32
	End   uint32
}

// CachedDiagnostic is a lexer diagnostic without the filename.
type CachedDiagnostic struct {
	Severity uint8
	Line     uint32
	Col      uint32
	Start    uint32
	End      uint32
	Message  string
	Help     string
}

// DiskPayload is what gets stored per content hash.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Tokens      []CachedToken
	Diagnostics []CachedDiagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "tokens": проще чистить руками.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err = enc.Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
// A payload written with another schema version counts as a miss.
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func toDiskPayload(tokens []token.Token, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Tokens: make([]CachedToken, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = CachedToken{
			Kind:  uint8(tok.Kind),
			Text:  tok.Text,
			Line:  tok.Loc.Line,
			Col:   tok.Loc.Column,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
	}
	items := bag.Items()
	payload.Diagnostics = make([]CachedDiagnostic, len(items))
	for i, d := range items {
		payload.Diagnostics[i] = CachedDiagnostic{
			Severity: uint8(d.Severity),
			Line:     d.Location.Line,
			Col:      d.Location.Column,
			Start:    d.Span.Start,
			End:      d.Span.End,
			Message:  d.Message,
			Help:     d.Help,
		}
	}
	return payload
}

// fromDiskPayload restores tokens and diagnostics for file; filename and FileID
// are taken from file since the same content may live under many paths.
func fromDiskPayload(payload *DiskPayload, file *source.File) ([]token.Token, *diag.Bag) {
	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(ct.Kind),
			Loc:  source.NewLocation(file.Path, ct.Line, ct.Col),
			Span: source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Text: ct.Text,
		}
	}
	bag := diag.NewBag()
	for _, cd := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Location: source.NewLocation(file.Path, cd.Line, cd.Col),
			Span:     source.Span{File: file.ID, Start: cd.Start, End: cd.End},
			Message:  cd.Message,
			Help:     cd.Help,
		})
	}
	return tokens, bag
}
