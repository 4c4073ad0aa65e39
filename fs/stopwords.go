package fs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"winnow"
)

// LoadStopwordFile reads a newline-delimited stop-word list. Blank lines and
// lines starting with # are ignored. Words are returned as written; callers
// normalize them on insertion into a StopwordSet.
func LoadStopwordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, winnow.Errorf(winnow.ENOTFOUND, "stop-word file %q does not exist", path)
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}
