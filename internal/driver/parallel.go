package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"dalton/internal/diag"
	"dalton/internal/source"
	"dalton/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу, как его нашёл обход
	FileID source.FileID // ID файла в FileSet; не valid, если LoadErr != nil
	Tokens []token.Token // nil, если файл не загрузился
	Bag    *diag.Bag     // собственный bag файла
	Cached bool
	// LoadErr is the I/O error, also recorded in Bag as a diagnostic.
	LoadErr error
}

// listSourceFiles возвращает отсортированный список файлов с подходящими расширениями
func listSourceFiles(dir string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && opts.matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every matching file under dir in parallel.
// Each file gets its own lexer and bag; results come back in sorted path order.
// Files that fail to load are reported as an error diagnostic at file:1:1.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listSourceFiles(dir, opts)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Загрузка последовательная: FileSet не потокобезопасен на запись,
	// а читать из воркеров можно.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	for _, path := range files {
		opts.emit(Event{File: path, Status: StatusQueued})
	}

	log := opts.logger()
	log.Debug("tokenize dir", "dir", dir, "files", len(files), "jobs", opts.jobs())

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.jobs(), len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			opts.emit(Event{File: path, Status: StatusLexing})

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag()
				bag.Error(source.NewLocation(path, 1, 1), "failed to load file: "+loadErr.Error())
				results[i] = TokenizeDirResult{Path: path, Bag: bag, LoadErr: loadErr}
				log.Warn("load failed", "path", path, "err", loadErr)
				opts.emit(Event{File: path, Status: StatusError, Err: loadErr, Elapsed: time.Since(start)})
				return nil
			}

			fileID := fileIDs[path]
			tokens, bag, cached := tokenizeFile(fileSet.Get(fileID), opts)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
				Cached: cached,
			}

			status := StatusDone
			if bag.HasError() {
				status = StatusError
			}
			opts.emit(Event{File: path, Status: status, Cached: cached, Elapsed: time.Since(start)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags concatenates per-file bags in result order.
func MergeBags(results []TokenizeDirResult) *diag.Bag {
	out := diag.NewBag()
	for _, r := range results {
		out.Merge(r.Bag)
	}
	return out
}
