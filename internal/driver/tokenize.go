package driver

import (
	"fmt"
	"time"

	"dalton/internal/diag"
	"dalton/internal/lexer"
	"dalton/internal/source"
	"dalton/internal/token"
)

// TokenizeResult holds the token stream and diagnostics of a single file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Cached  bool // результат взят из дискового кэша
}

// Tokenize loads path and lexes it to EOF.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	tokens, bag, cached := tokenizeFile(file, opts)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Cached:  cached,
	}, nil
}

// TokenizeSource lexes an in-memory buffer registered under name.
func TokenizeSource(name string, src []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	tokens, bag, cached := tokenizeFile(file, opts)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Cached:  cached,
	}
}

// tokenizeFile runs one lexer with its own bag over file, consulting the cache first.
// Cache failures are logged and never change the result.
func tokenizeFile(file *source.File, opts Options) (tokens []token.Token, bag *diag.Bag, cached bool) {
	log := opts.logger()
	start := time.Now()

	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(file.Hash, &payload)
		if err != nil {
			log.Warn("token cache read failed", "path", file.Path, "err", err)
		}
		if hit {
			tokens, bag = fromDiskPayload(&payload, file)
			log.Debug("tokenized", "path", file.Path, "tokens", len(tokens),
				"diagnostics", bag.Len(), "cached", true, "elapsed", time.Since(start))
			return tokens, bag, true
		}
	}

	bag = diag.NewBag()
	lx := lexer.New(file, lexer.Options{Reporter: bag})
	tokens = lx.Tokens()

	if opts.Cache != nil {
		if err := opts.Cache.Put(file.Hash, toDiskPayload(tokens, bag)); err != nil {
			log.Warn("token cache write failed", "path", file.Path, "err", err)
		}
	}
	log.Debug("tokenized", "path", file.Path, "tokens", len(tokens),
		"diagnostics", bag.Len(), "cached", false, "elapsed", time.Since(start))
	return tokens, bag, false
}
