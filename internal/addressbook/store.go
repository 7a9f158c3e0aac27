// Package addressbook reads and writes collaborator records as one TOML
// file per collaborator inside a single directory.
package addressbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/peerbook/internal/collaborator"
	"github.com/danmuck/peerbook/internal/tomltree"
)

// DefaultDir is the conventional address-book location.
const DefaultDir = "project_graph_data/collaborator_files_address_book"

const fileSuffix = "__collaborator.toml"

// Store is a directory of collaborator record files.
type Store struct {
	dir string
	log zerolog.Logger
}

func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
		log: log.With().Str("component", "addressbook").Str("dir", dir).Logger(),
	}
}

// Path returns the record file path for a collaborator name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+fileSuffix)
}

// Load reads and decodes a single collaborator by name, fail-fast: any
// read, parse, or hard field failure propagates. Soft address errors are
// logged and dropped; the record is still returned.
func (s *Store) Load(name string) (collaborator.Record, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return collaborator.Record{}, fmt.Errorf("read collaborator %q: %w", name, err)
	}
	root, err := tomltree.Parse(string(data))
	if err != nil {
		return collaborator.Record{}, fmt.Errorf("parse collaborator %q: %w", name, err)
	}
	rec, soft, err := collaborator.DecodeOne(root)
	if err != nil {
		return collaborator.Record{}, fmt.Errorf("decode collaborator %q: %w", name, err)
	}
	for _, e := range soft {
		s.log.Warn().Str("name", name).Err(e).Msg("skipped address element")
	}
	return rec, nil
}

// LoadAll decodes every record file in the directory, collect-and-continue:
// one bad file never aborts the batch. Per-file hard failures and skipped
// address elements land in the returned error list, wrapped with the file
// name. Only a failure to read the directory itself is returned as the
// final error. Results keep directory listing order.
func (s *Store) LoadAll() ([]collaborator.Record, []error, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read address book %s: %w", s.dir, err)
	}

	var records []collaborator.Record
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		root, err := tomltree.Parse(string(data))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		rec, soft, err := collaborator.DecodeOne(root)
		for _, e := range soft {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), e))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			s.log.Warn().Str("file", entry.Name()).Err(err).Msg("record rejected")
			continue
		}
		records = append(records, rec)
	}
	return records, errs, nil
}

// Save encodes rec and writes it under the record naming convention. The
// in-memory encoding cannot fail; only the write can.
func (s *Store) Save(rec collaborator.Record) error {
	path := s.Path(rec.UserName)
	if err := os.WriteFile(path, []byte(collaborator.Encode(rec)), 0o644); err != nil {
		return fmt.Errorf("write collaborator %q: %w", rec.UserName, err)
	}
	s.log.Debug().Str("name", rec.UserName).Msg("record written")
	return nil
}
