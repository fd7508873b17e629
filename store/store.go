// SPDX-License-Identifier: MIT

package store

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/graphkit/codec"
	"github.com/katalvlaran/graphkit/core"
)

// Store is a named collection of graphs backed by a bbolt file.
type Store struct {
	db     *bbolt.DB
	bucket []byte
	logger logrus.FieldLogger
}

// Entry summarizes a stored graph without the caller decoding it.
type Entry struct {
	Name     string
	Vertices int
	Edges    int
	Directed bool
	Weighted bool
	Size     int
}

// Open opens (creating if needed) the database at path.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := newConfig(opts)
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: cfg.timeout})
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %s", path)
	}
	s := &Store{
		db:     db,
		bucket: []byte(cfg.bucket),
		logger: cfg.logger.WithField("module", "store"),
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "store: bucket %s", cfg.bucket)
	}
	s.logger.Debugf("opened %s (bucket %s)", path, cfg.bucket)
	return s, nil
}

// Path returns the database file name.
func (s *Store) Path() string { return s.db.Path() }

// Close releases the database file. Closing twice is a no-op.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return errors.Wrap(err, "store: close")
}

func (s *Store) check(name string) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

// Put stores g under name, replacing any previous graph.
func (s *Store) Put(name string, g *core.Graph) error {
	if err := s.check(name); err != nil {
		return err
	}
	data, err := codec.Marshal(g)
	if err != nil {
		return errors.Wrapf(err, "store: put %s", name)
	}
	start := time.Now()
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(name), data)
	})
	if err != nil {
		return errors.Wrapf(err, "store: put %s", name)
	}
	s.logger.WithFields(logrus.Fields{
		"graph": name,
		"bytes": len(data),
	}).Debugf("put in %s", time.Since(start))
	return nil
}

// Get decodes the graph stored under name.
func (s *Store) Get(name string) (*core.Graph, error) {
	data, err := s.raw(name)
	if err != nil {
		return nil, err
	}
	g, err := codec.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "store: get %s", name)
	}
	s.logger.WithField("graph", name).Debug("get")
	return g, nil
}

// Has reports whether a graph is stored under name.
func (s *Store) Has(name string) (bool, error) {
	_, err := s.raw(name)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// raw copies the encoded bytes out of the read transaction.
func (s *Store) raw(name string) ([]byte, error) {
	if err := s.check(name); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(name))
		if v == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		data = append([]byte(nil), v...)
		return nil
	})
	return data, err
}

// Delete removes the graph stored under name.
func (s *Store) Delete(name string) error {
	if err := s.check(name); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b.Get([]byte(name)) == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		return b.Delete([]byte(name))
	})
	if err != nil {
		return err
	}
	s.logger.WithField("graph", name).Debug("deleted")
	return nil
}

// List returns the stored names in ascending order.
func (s *Store) List() ([]string, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "store: list")
	}
	sort.Strings(names)
	return names, nil
}

// Stat decodes the graph under name and summarizes it.
func (s *Store) Stat(name string) (Entry, error) {
	data, err := s.raw(name)
	if err != nil {
		return Entry{}, err
	}
	g, err := codec.Unmarshal(data)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "store: stat %s", name)
	}
	return Entry{
		Name:     name,
		Vertices: g.NodeCount(),
		Edges:    g.EdgeCount(),
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Size:     len(data),
	}, nil
}
