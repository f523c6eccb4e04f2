package diagfmt

import (
	"dalton/internal/source"
)

// displayPath formats a diagnostic filename according to mode.
// Names unknown to fs are printed as is.
func displayPath(name string, fs *source.FileSet, mode PathMode) string {
	if fs == nil || name == "" {
		return name
	}
	id, ok := fs.GetLatest(name)
	if !ok {
		return name
	}
	f := fs.Get(id)
	switch mode {
	case PathModeRelative:
		return f.FormatPath(mode.String(), fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}

func displayLocation(loc source.Location, fs *source.FileSet, mode PathMode) string {
	loc.Filename = displayPath(loc.Filename, fs, mode)
	return loc.String()
}

// fileFor returns the file a diagnostic location refers to, if fs knows it.
func fileFor(loc source.Location, fs *source.FileSet) *source.File {
	if fs == nil || loc.Filename == "" {
		return nil
	}
	id, ok := fs.GetLatest(loc.Filename)
	if !ok {
		return nil
	}
	return fs.Get(id)
}
