package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"dalton/internal/diag"
	"dalton/internal/driver"
	"dalton/internal/source"
	"dalton/internal/token"
)

type fileTokens struct {
	Path   string
	Tokens []token.Token
}

// collection is the merged outcome of tokenizing a file or a directory.
type collection struct {
	fs    *source.FileSet
	files []fileTokens
	bag   *diag.Bag
	isDir bool
}

// collect tokenizes path, which may be a single file or a directory.
// The progress view is only used for directories.
func collect(ctx context.Context, env *cliEnv, path string, opts driver.Options, mode uiMode, uiOut io.Writer) (*collection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	done := env.timer.Track("lex")
	if !info.IsDir() {
		res, err := driver.Tokenize(path, opts)
		if err != nil {
			return nil, fmt.Errorf("tokenization failed: %w", err)
		}
		done(fmt.Sprintf("%d tokens", len(res.Tokens)))
		return &collection{
			fs:    res.FileSet,
			files: []fileTokens{{Path: res.File.Path, Tokens: res.Tokens}},
			bag:   res.Bag,
		}, nil
	}

	var (
		fs      *source.FileSet
		results []driver.TokenizeDirResult
	)
	if shouldUseTUI(mode) {
		fs, results, err = runTokenizeDirWithUI(ctx, "tokenizing "+path, path, opts, uiOut)
	} else {
		fs, results, err = driver.TokenizeDir(ctx, path, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}
	done(fmt.Sprintf("%d files", len(results)))

	files := make([]fileTokens, 0, len(results))
	for _, r := range results {
		if r.LoadErr != nil {
			continue
		}
		files = append(files, fileTokens{Path: r.Path, Tokens: r.Tokens})
	}
	return &collection{
		fs:    fs,
		files: files,
		bag:   driver.MergeBags(results),
		isDir: true,
	}, nil
}
