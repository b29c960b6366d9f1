package source

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (request payload, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures the content of a single source file together with a
// precomputed line index. LineIdx holds the byte offset of every '\n'
// in Content, so 1-based line lookups never rescan the text.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}
