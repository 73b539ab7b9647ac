package scan

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ReadFileContent reads the file at path as text, truncating to the first
// maxSize bytes when the file is larger. Invalid UTF-8 sequences are
// replaced, never fatal. On any I/O failure the returned content is a
// synthetic error message and truncated is false; reading never fails to
// the caller.
func ReadFileContent(path string, maxSize int64) (content string, truncated bool) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	f, err := os.Open(path)
	if err != nil {
		return readFailure(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return readFailure(path, err)
	}

	if info.Size() > maxSize {
		buf := make([]byte, maxSize)
		n, err := io.ReadFull(f, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return readFailure(path, err)
		}
		return decodeLenient(buf[:n]), true
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return readFailure(path, err)
	}
	return decodeLenient(data), false
}

func readFailure(path string, err error) (string, bool) {
	log.Warn("Error reading file", "path", path, "error", err)
	return fmt.Sprintf("Error reading file: %v", err), false
}

// decodeLenient replaces undecodable byte sequences with the Unicode
// replacement character.
func decodeLenient(b []byte) string {
	return string(bytes.ToValidUTF8(b, []byte("�")))
}

// ApplyPreview keeps only the first limit lines of content and appends a
// trailer line naming how many lines were elided. Content at or under the
// limit is returned unchanged with zero elided.
func ApplyPreview(content string, limit int) (string, int) {
	if limit <= 0 || content == "" {
		return content, 0
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(lines) <= limit {
		return content, 0
	}
	elided := len(lines) - limit
	kept := strings.Join(lines[:limit], "\n")
	return fmt.Sprintf("%s\n[... Preview truncated, %d more lines elided ...]", kept, elided), elided
}

// CountLines returns the line count of content the way the document
// reports it: the number of newline-separated segments, zero for empty
// content.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Split(content, "\n"))
}
