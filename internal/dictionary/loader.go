package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a newline-delimited word list into a new dictionary.
// Blank lines and lines starting with '#' are skipped.
func Load(r io.Reader, opts ...Option) (*Dictionary, error) {
	d := New(opts...)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if err := d.Add(s); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if d.Len() == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...Option) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
