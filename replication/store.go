package replication

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/Dosada05/sportsday-system/models"
)

// SnapshotBucket is the BoltDB bucket holding published snapshots.
const SnapshotBucket = "snapshots"

// DefaultSnapshotKey is the key the live dashboard snapshot is published
// under.
const DefaultSnapshotKey = "live"

// Store is the one-way replication channel between the authoritative side and
// the display surface. Publish replaces the value under a key atomically; Read
// returns the last published value, or found=false when nothing has been
// published yet. There are no transactional guarantees across keys, and a
// reader must tolerate stale values.
type Store interface {
	Publish(key string, snap models.Snapshot) (err error)
	Read(key string) (snap models.Snapshot, found bool, err error)
	Close() error
}

// BoltStore implements Store on a BoltDB file. Bolt serializes writers and
// gives readers a consistent view of a single key, which is exactly the
// atomicity the channel needs.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(dbPath string) (*BoltStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store at %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(SnapshotBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Publish(key string, snap models.Snapshot) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(SnapshotBucket))
		if bucket == nil {
			return fmt.Errorf("bucket %s does not exist", SnapshotBucket)
		}

		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return bucket.Put([]byte(key), data)
	})
}

func (s *BoltStore) Read(key string) (models.Snapshot, bool, error) {
	var snap models.Snapshot
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(SnapshotBucket))
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}

		found = true
		return json.Unmarshal(data, &snap)
	})
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}

	return snap, found, nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
