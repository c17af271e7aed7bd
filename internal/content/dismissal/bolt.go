package dismissal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketDismissals = []byte("dismissals")

// BoltStore persists dismissals in a bbolt file so they survive restarts.
// Keys are client ids, values are JSON arrays of dismissed popup ids.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open dismissal db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDismissals)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create dismissal bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Dismiss(_ context.Context, clientID, popupID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDismissals)
		ids, err := decodeIDs(b.Get([]byte(clientID)))
		if err != nil {
			return err
		}
		for _, id := range ids {
			if id == popupID {
				return nil
			}
		}
		ids = append(ids, popupID)
		raw, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("encode dismissed ids: %w", err)
		}
		return b.Put([]byte(clientID), raw)
	})
}

func (s *BoltStore) Dismissed(_ context.Context, clientID string) ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		ids, err = decodeIDs(tx.Bucket(bucketDismissals).Get([]byte(clientID)))
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *BoltStore) Close() error { return s.db.Close() }

func decodeIDs(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode dismissed ids: %w", err)
	}
	return ids, nil
}
