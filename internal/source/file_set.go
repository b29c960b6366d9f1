package source

import (
	"os"
	"sync"
)

// FileSet caches files loaded from disk so that many requests pointing at
// the same contract file share one read and one line index.
// Thread-safe for concurrent access.
type FileSet struct {
	mu      sync.Mutex
	files   map[string]*File // normalized path -> file
	baseDir string
}

// NewFileSet creates an empty FileSet rooted at baseDir (may be "").
func NewFileSet(baseDir string) *FileSet {
	return &FileSet{
		files:   make(map[string]*File),
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory for relative path display, falling
// back to the working directory when unset.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Load reads a file from disk, normalizes BOM/CRLF, and caches it by path.
// Repeated loads of the same path return the cached entry.
func (fs *FileSet) Load(path string) (*File, error) {
	key := normalizePath(path)

	fs.mu.Lock()
	f, ok := fs.files[key]
	fs.mu.Unlock()
	if ok {
		return f, nil
	}

	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}

	f = &File{
		Path:    key,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}

	fs.mu.Lock()
	// another goroutine may have loaded the same path meanwhile
	if prev, ok := fs.files[key]; ok {
		f = prev
	} else {
		fs.files[key] = f
	}
	fs.mu.Unlock()
	return f, nil
}

// Get returns the cached file for path, if it was loaded into this set.
func (fs *FileSet) Get(path string) (*File, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f, ok := fs.files[normalizePath(path)]
	return f, ok
}

// Len returns the number of cached files.
func (fs *FileSet) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}
