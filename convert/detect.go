package convert

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

var zipSignature = []byte{'P', 'K', 0x03, 0x04}

// isArchiveFile sniffs the file header for the zip signature. Extensions are
// not trusted, plenty of document collections use .zip-less names.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(zipSignature))
	if _, err := f.Read(head); err != nil {
		// too short to be an archive
		return false, nil
	}
	return bytes.Equal(head, zipSignature), nil
}

// isDocumentFile recognizes annotated plain-text documents by extension.
func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".txt", ".text":
		return true
	}
	return false
}

func isDocumentInArchive(f *zip.File) bool {
	return isDocumentFile(f.FileHeader.Name)
}
