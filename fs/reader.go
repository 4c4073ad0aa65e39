package fs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"winnow"
)

// Ensure Reader implements winnow.FileReader at compile time.
var _ winnow.FileReader = (*Reader)(nil)

// Reader reads input files, enforcing a per-file size limit and dropping
// invalid UTF-8 byte sequences.
type Reader struct {
	maxBytes int64
}

// NewReader creates a Reader with the given per-file size limit.
func NewReader(maxBytes int64) *Reader {
	return &Reader{maxBytes: maxBytes}
}

// ReadText returns the contents of the file at path. Byte sequences that do
// not decode as UTF-8 are removed. Returns EEMPTY for empty files or files
// with no decodable text, and ETOOLARGE for files over the size limit.
func (r *Reader) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", winnow.Errorf(winnow.ENOTFOUND, "file %q does not exist", path)
	} else if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Size() == 0 {
		return "", winnow.Errorf(winnow.EEMPTY, "file is empty")
	}
	if info.Size() > r.maxBytes {
		return "", winnow.Errorf(winnow.ETOOLARGE, "file is %d bytes, over the %d byte limit", info.Size(), r.maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text := strings.ToValidUTF8(string(data), "")
	if strings.TrimSpace(text) == "" {
		return "", winnow.Errorf(winnow.EEMPTY, "file contains no readable text")
	}
	return text, nil
}
