package history

import (
	"encoding/binary"
	"time"

	bolt "go.etcd.io/bbolt"
)

var lines = []byte("lines")

// Store keeps the shell command history in a bolt file so it survives
// between sessions. Only typed source lines are stored, never any
// interpreter state.
type Store struct {
	db  *bolt.DB
	max int
}

func Open(file string, max int) (*Store, error) {
	options := bolt.Options{
		Timeout: time.Second,
	}
	db, err := bolt.Open(file, 0600, &options)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(lines)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{
		db:  db,
		max: max,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(line string) error {
	if line == "" {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bck := tx.Bucket(lines)
		seq, err := bck.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		if err := bck.Put(key, []byte(line)); err != nil {
			return err
		}
		return s.trim(bck)
	})
}

func (s *Store) Last(n int) ([]string, error) {
	var list []string
	err := s.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(lines).Cursor()
		for k, v := cur.Last(); k != nil && len(list) < n; k, v = cur.Prev() {
			list = append(list, string(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

func (s *Store) Len() (int, error) {
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(lines).Stats().KeyN
		return nil
	})
	return count, err
}

func (s *Store) trim(bck *bolt.Bucket) error {
	if s.max <= 0 {
		return nil
	}
	var (
		cur   = bck.Cursor()
		count int
	)
	for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
		count++
	}
	for k, _ := cur.First(); k != nil && count > s.max; k, _ = cur.Next() {
		if err := cur.Delete(); err != nil {
			return err
		}
		count--
	}
	return nil
}
