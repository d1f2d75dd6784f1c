package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"loom/internal/source"
)

// lineStartOffset returns the byte offset where line begins (1-based).
func lineStartOffset(f *source.File, line uint32) uint32 {
	if line <= 1 {
		return 0
	}
	idx := line - 2
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	lenFileContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return lenFileContent
}

// lineEndOffsetInclusive returns the byte offset just past the end of line
// (1-based), including its terminating newline; for the last line without
// one, the length of the file.
func lineEndOffsetInclusive(f *source.File, line uint32) uint32 {
	if line == 0 {
		return 0
	}
	idx := line - 1
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	lenFileContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return lenFileContent
}

// splitPreviewLines splits a source excerpt into display lines, dropping a
// trailing newline so the last line isn't reported as a spurious blank one.
func splitPreviewLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	text := string(content)
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
