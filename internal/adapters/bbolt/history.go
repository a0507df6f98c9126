// Package bbolt implements the ports.History interface using bbolt
// (embedded B+ tree). Conversation sessions and training sessions live
// in separate top-level buckets, keyed by session ID with JSON values.
// Writes are transactional — a crash mid-write cannot corrupt
// previously committed sessions.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/boli/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketConversations = []byte("conversations")
	bucketTraining      = []byte("training")
)

// History implements ports.History backed by bbolt.
type History struct {
	db *bolt.DB
}

var _ ports.History = (*History)(nil)

// Open opens (or creates) a bbolt database at the given path and
// ensures both buckets exist.
func Open(path string) (*History, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketConversations); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketTraining)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init buckets: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the underlying bbolt database.
func (h *History) Close() error {
	return h.db.Close()
}

// UpsertSession stores a conversation session keyed by its session ID,
// replacing any prior version. Sessions flushed repeatedly as they grow
// therefore occupy one slot, not one per flush.
func (h *History) UpsertSession(s *ports.Session) error {
	if s == nil || s.SessionID == "" {
		return fmt.Errorf("session with empty id")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return h.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketConversations).Put([]byte(s.SessionID), data)
	})
}

// Sessions returns all conversation sessions. bbolt iterates keys in
// byte order, and session IDs are timestamps, so the result is
// chronological.
func (h *History) Sessions() ([]ports.Session, error) {
	var out []ports.Session
	err := h.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketConversations).ForEach(func(k, v []byte) error {
			var s ports.Session
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("unmarshal session %s: %w", k, err)
			}
			out = append(out, s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SessionCount returns the number of stored conversation sessions.
func (h *History) SessionCount() (int, error) {
	var n int
	err := h.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketConversations).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// AppendTraining stores a training session keyed by its session ID.
func (h *History) AppendTraining(s *ports.TrainingSession) error {
	if s == nil || s.SessionID == "" {
		return fmt.Errorf("training session with empty id")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal training session: %w", err)
	}
	return h.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTraining).Put([]byte(s.SessionID), data)
	})
}

// TrainingSessions returns all training sessions in chronological
// (key) order.
func (h *History) TrainingSessions() ([]ports.TrainingSession, error) {
	var out []ports.TrainingSession
	err := h.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTraining).ForEach(func(k, v []byte) error {
			var s ports.TrainingSession
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("unmarshal training session %s: %w", k, err)
			}
			out = append(out, s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
