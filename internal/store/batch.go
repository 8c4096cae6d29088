package store

import "chomp/internal/models"

// Batch saves many records against a doc_id index built once, instead of
// rescanning the directory per record. Results match Store.Save as long as
// nothing else writes to the directory while the batch is in use.
type Batch struct {
	store *Store
	index map[string]string
}

// NewBatch scans the directory once and indexes every doc_id. As with Find,
// the first file in directory order wins for a repeated doc_id.
func (s *Store) NewBatch() (*Batch, error) {
	index := make(map[string]string)

	for entry, err := range s.scan() {
		if err != nil {
			return nil, err
		}

		id, ok := entry.Record.DocID()
		if !ok {
			continue
		}

		if _, seen := index[id]; !seen {
			index[id] = entry.Name
		}
	}

	s.log.Debug("batch index built", "dir", s.dir, "records", len(index))

	return &Batch{store: s, index: index}, nil
}

// Len returns the number of indexed doc_ids.
func (b *Batch) Len() int {
	return len(b.index)
}

// Lookup returns the file holding docID, if any.
func (b *Batch) Lookup(docID string) FindResult {
	name, ok := b.index[docID]

	return FindResult{Name: name, Found: ok}
}

// Save writes rec the way Store.Save does and records the file in the index.
func (b *Batch) Save(rec models.Record) (string, error) {
	docID, ok := rec.DocID()
	if !ok {
		return "", ErrMissingDocID
	}

	found := b.Lookup(docID)
	name := found.Name

	if found.Found {
		b.store.log.Info("saving (overwrite)", "file", name, "doc_id", docID)
	} else {
		var err error

		name, err = b.store.nextName(rec)
		if err != nil {
			return "", err
		}

		b.store.log.Info("saving", "file", name, "doc_id", docID)
	}

	if err := b.store.write(name, rec); err != nil {
		return "", err
	}

	b.index[docID] = name

	return name, nil
}
