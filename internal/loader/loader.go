// Package loader reads a cartridge ROM file off disk, transparently
// decompressing it if it arrived wrapped in a zip, gzip or 7z archive.
//
// Grounded on the teacher's pkg/utils/files.go LoadFile, generalized per
// SPEC_FULL.md §2's domain-stack wiring: the teacher only exercises
// archive/zip, compress/gzip and bodgit/sevenzip for this purpose, so
// this package keeps exactly that trio rather than reaching for a fourth.
package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads filename and returns its (possibly decompressed) contents.
// Plain .gb/.gbc images and anything with an unrecognized extension are
// returned as-is; .gz/.zip/.7z archives are unwrapped and their first
// entry returned.
func Load(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", filename, err)
	}

	switch filepath.Ext(filename) {
	case ".gb", ".gbc":
		return data, nil
	case ".gz":
		return decompressGzip(data)
	case ".zip":
		return decompressZip(data)
	case ".7z":
		return decompress7z(data)
	default:
		return data, nil
	}
}

func decompressGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loader: opening gzip stream: %w", err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

func decompressZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(byteReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("loader: opening zip archive: %w", err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("loader: zip archive is empty")
	}
	entry, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("loader: opening first zip entry: %w", err)
	}
	defer entry.Close()
	return io.ReadAll(entry)
}

func decompress7z(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(byteReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("loader: opening 7z archive: %w", err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("loader: 7z archive is empty")
	}
	entry, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("loader: opening first 7z entry: %w", err)
	}
	defer entry.Close()
	return io.ReadAll(entry)
}

// byteReader adapts an in-memory byte slice to io.ReaderAt, which both
// zip.NewReader and sevenzip.NewReader require.
type byteReaderAt []byte

func (b byteReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func byteReader(data []byte) byteReaderAt {
	return byteReaderAt(data)
}
