// Package store keeps scraped-article records as one JSON file each in a
// flat directory.
//
// The directory is the only index: Save scans it for the record's doc_id
// before deciding between overwrite and create. A Store assumes it is the
// only writer of its directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"chomp/internal/config"
	"chomp/internal/logger"
	"chomp/internal/models"
	"chomp/internal/normalizer"
)

const timestampLayout = "20060102"

// Store reads and writes record files in one directory.
type Store struct {
	log      *logger.Logger
	now      func() time.Time
	dir      string
	template string
	maxIndex int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the event sink.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock sets the time source used for filename timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithMaxIndex bounds the filename index search.
func WithMaxIndex(n int) Option {
	return func(s *Store) {
		s.maxIndex = n
	}
}

// New creates a store over cfg.OutputDir.
func New(cfg config.StoreConfig, opts ...Option) *Store {
	s := &Store{
		log:      logger.Nop(),
		now:      time.Now,
		dir:      cfg.OutputDir,
		template: cfg.FilenameTemplate,
		maxIndex: cfg.MaxIndex,
	}

	if s.template == "" {
		s.template = config.DefaultFilenameTemplate
	}

	if s.maxIndex < 1 {
		s.maxIndex = config.DefaultMaxIndex
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// Entry is a record together with the file it was read from.
type Entry struct {
	Record models.Record
	Name   string
}

// LoadResult is the outcome of Load.
type LoadResult struct {
	Entries  []Entry
	Scanned  int
	Included int
}

// Skipped is the number of processed records left out.
func (r *LoadResult) Skipped() int {
	return r.Scanned - r.Included
}

// Load reads every record file in the directory. Records with content are
// left out unless includeProcessed is set; they still count as scanned.
// A file that fails to decode aborts the load with a *ParseError.
func (s *Store) Load(includeProcessed bool) (*LoadResult, error) {
	s.log.Debug("searching for record files", "dir", s.dir)

	result := &LoadResult{}

	for entry, err := range s.scan() {
		if err != nil {
			return nil, err
		}

		result.Scanned++

		if entry.Record.IsProcessed() && !includeProcessed {
			s.log.Info("skipping", "file", entry.Name)

			continue
		}

		s.log.Info("loading", "file", entry.Name)
		result.Included++
		result.Entries = append(result.Entries, entry)
	}

	s.log.Info("records found",
		"scanned", result.Scanned,
		"included", result.Included,
		"skipped", result.Skipped(),
	)

	return result, nil
}

// FindResult is the outcome of Find.
type FindResult struct {
	Name  string
	Found bool
}

// Find returns the first file, in directory order, holding docID.
func (s *Store) Find(docID string) (FindResult, error) {
	want := models.Record{models.FieldDocID: docID}

	for entry, err := range s.scan() {
		if err != nil {
			return FindResult{}, err
		}

		if entry.Record.SameDoc(want) {
			return FindResult{Name: entry.Name, Found: true}, nil
		}
	}

	return FindResult{}, nil
}

// Save writes rec over the file already holding its doc_id, or into a new
// file named from the template. It returns the file name used.
func (s *Store) Save(rec models.Record) (string, error) {
	docID, ok := rec.DocID()
	if !ok {
		return "", ErrMissingDocID
	}

	found, err := s.Find(docID)
	if err != nil {
		return "", err
	}

	name := found.Name

	if found.Found {
		s.log.Info("saving (overwrite)", "file", name, "doc_id", docID)
	} else {
		name, err = s.nextName(rec)
		if err != nil {
			return "", err
		}

		s.log.Info("saving", "file", name, "doc_id", docID)
	}

	if err := s.write(name, rec); err != nil {
		return "", err
	}

	return name, nil
}

// scan yields every *.json file in directory order.
func (s *Store) scan() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		dirEntries, err := os.ReadDir(s.dir)
		if err != nil {
			yield(Entry{}, fmt.Errorf("reading store directory: %w", err))

			return
		}

		for _, de := range dirEntries {
			if de.IsDir() || !strings.HasSuffix(de.Name(), config.RecordExt) {
				continue
			}

			rec, err := s.read(de.Name())
			if !yield(Entry{Record: rec, Name: de.Name()}, err) || err != nil {
				return
			}
		}
	}
}

func (s *Store) read(name string) (models.Record, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	rec, err := Decode(data)
	if err != nil {
		return nil, &ParseError{File: name, Err: err}
	}

	return rec, nil
}

func (s *Store) write(name string, rec models.Record) error {
	data, err := Encode(rec)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}

// nextName renders the template for rec and takes the lowest free index.
func (s *Store) nextName(rec models.Record) (string, error) {
	base := RenderTemplate(s.template, s.now(), rec.PubShort(), normalizer.Slugify(rec.SearchTerm()))

	for i := range s.maxIndex {
		name := strings.ReplaceAll(base, config.PlaceholderIndex, strconv.Itoa(i))
		if strings.ContainsAny(name, `/\`) {
			return "", fmt.Errorf("%w: %q", ErrInvalidFilename, name)
		}

		_, err := os.Lstat(filepath.Join(s.dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}

		if err != nil {
			return "", fmt.Errorf("checking %s: %w", name, err)
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrIndexExhausted, base, s.maxIndex)
}

// RenderTemplate fills timestamp, site and term into tmpl and leaves
// {index} in place.
func RenderTemplate(tmpl string, now time.Time, site, term string) string {
	r := strings.NewReplacer(
		config.PlaceholderTimestamp, now.Format(timestampLayout),
		config.PlaceholderSite, site,
		config.PlaceholderTerm, term,
	)

	return r.Replace(tmpl)
}
