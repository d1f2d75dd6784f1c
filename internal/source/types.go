package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (REPL input, stdin, a test fixture).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 byte-order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF line endings were normalized to LF on load.
	FileNormalizedCRLF
)

// File holds the content and line index for one source file tracked by a FileSet.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n' in Content
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable 1-based line/column position.
type LineCol struct {
	Line uint32
	Col  uint32
}
