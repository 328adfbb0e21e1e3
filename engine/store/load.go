package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadRelation reads one relation from r: the first non-blank line is the
// tab/whitespace-delimited column header, every following line a row of
// the same arity. name becomes the relation's name in the Store.
func (s *Store) LoadRelation(name string, r io.Reader) (*Relation, error) {
	scanner := bufio.NewScanner(r)

	var header []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		header = strings.Fields(line)
		break
	}
	if header == nil {
		return nil, fmt.Errorf("relation %q: empty input, no header line", name)
	}

	rel, err := s.CreateRelation(name, header)
	if err != nil {
		return nil, err
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if err := rel.AddRow(fields); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("relation %q: %w", name, err)
	}

	return rel, nil
}

// LoadDir populates a Store from a directory of files, one per relation:
// "students.tab" becomes relation "students". Extension is stripped,
// everything else about the filename becomes the relation name verbatim.
func LoadDir(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir %q: %w", dir, err)
	}

	s := NewStore()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		_, err = s.LoadRelation(name, f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}
