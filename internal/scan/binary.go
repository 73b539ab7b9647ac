package scan

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// binaryExtensions are extensions rejected without opening the file.
var binaryExtensions = map[string]bool{
	// Images
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".svg": true,
	// Documents
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	// Executables and libraries
	".exe": true, ".dll": true, ".so": true, ".dylib": true,
	// Archives
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true,
	// Media
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true,
	// Compiled artifacts
	".pyc": true, ".pyo": true, ".class": true,
}

const (
	// packagingExtension marks built package artifacts.
	packagingExtension = ".egg"
	// packagingMetaSuffix names build-tool metadata directories.
	packagingMetaSuffix = ".egg-info"

	// sniffLength is how many leading bytes are inspected for NUL.
	sniffLength = 1024
	// oversizeFactor times MaxFileSize is the hard cutoff for even
	// attempting to treat a file as text.
	oversizeFactor = 10
)

// IsTextFile reports whether the file at path can be read as text. The
// checks short-circuit: known-binary extension, packaging artifact or
// metadata path, hard size cutoff, then a NUL-byte sniff of the leading
// bytes. Any I/O error classifies the file as not text.
func IsTextFile(path string, maxFileSize int64) bool {
	lower := strings.ToLower(path)
	ext := filepath.Ext(lower)
	if binaryExtensions[ext] {
		return false
	}
	if ext == packagingExtension || strings.HasSuffix(lower, packagingExtension) {
		return false
	}
	if strings.Contains(lower, packagingMetaSuffix) {
		return false
	}

	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.Size() > maxFileSize*oversizeFactor {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffLength)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return !bytes.ContainsRune(buf[:n], 0)
}
