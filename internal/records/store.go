package records

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"synthink/internal/models"
	"synthink/internal/providers"
	"synthink/internal/storage/interfaces"

	json "github.com/goccy/go-json"
)

const (
	HistoryKey   = "history"
	SavedKey     = "saved"
	HistoryLimit = 50
)

var (
	ErrNotFound  = errors.New("poem not found")
	ErrAmbiguous = errors.New("poem id prefix is ambiguous")
)

// Store owns the history and saved collections of one client. Every mutation
// rewrites the full snapshot of the collection it touched.
type Store struct {
	mu        sync.Mutex
	snapshots interfaces.SnapshotStoreInterface
	logger    providers.Logger
	history   []models.PoemRecord
	saved     []models.PoemRecord
}

// NewStore loads both collections. Unreadable or malformed snapshots are
// logged and replaced by empty collections.
func NewStore(snapshots interfaces.SnapshotStoreInterface, logger providers.Logger) *Store {
	s := &Store{snapshots: snapshots, logger: logger}
	s.history = s.load(HistoryKey, HistoryLimit)
	s.saved = s.load(SavedKey, 0)
	return s
}

func (s *Store) load(key string, limit int) []models.PoemRecord {
	data, err := s.snapshots.Load(key)
	if err != nil {
		s.logger.Warnf(providers.TypeStore, "Cannot read %s, starting empty: %s", key, err)
		return []models.PoemRecord{}
	}
	if len(data) == 0 {
		return []models.PoemRecord{}
	}
	records, dropped, err := decodeRecords(data)
	if err != nil {
		s.logger.Warnf(providers.TypeStore, "Malformed %s snapshot, starting empty: %s", key, err)
		return []models.PoemRecord{}
	}
	if dropped > 0 {
		s.logger.Warnf(providers.TypeStore, "Dropped %d unusable records from %s", dropped, key)
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// decodeRecords parses a JSON array record by record so that a single broken
// entry does not discard the rest.
func decodeRecords(data []byte) ([]models.PoemRecord, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, err
	}

	records := make([]models.PoemRecord, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	dropped := 0
	for _, item := range raw {
		var r models.PoemRecord
		if err := json.Unmarshal(item, &r); err != nil || !r.Usable() {
			dropped++
			continue
		}
		if _, dup := seen[r.ID]; dup {
			dropped++
			continue
		}
		seen[r.ID] = struct{}{}
		if !r.Feedback.Valid() {
			r.Feedback = models.FeedbackNone
		}
		records = append(records, r)
	}
	return records, dropped, nil
}

func (s *Store) persist(key string, records []models.PoemRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := s.snapshots.Save(key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// RecordGeneration puts r at the front of history and keeps the newest
// HistoryLimit entries.
func (s *Store) RecordGeneration(r models.PoemRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.PoemRecord, 0, min(len(s.history)+1, HistoryLimit))
	history = append(history, r)
	for _, h := range s.history {
		if len(history) == HistoryLimit {
			break
		}
		history = append(history, h)
	}
	s.history = history
	return s.persist(HistoryKey, s.history)
}

// ToggleSaved removes r from saved when its id is present and prepends it
// otherwise. It reports whether r is saved afterwards.
func (s *Store) ToggleSaved(r models.PoemRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.saved, r.ID); i >= 0 {
		s.saved = remove(s.saved, i)
		return false, s.persist(SavedKey, s.saved)
	}
	s.saved = append([]models.PoemRecord{r}, s.saved...)
	return true, s.persist(SavedKey, s.saved)
}

// DeleteSaved removes the saved record with id. Unknown ids are ignored and
// nothing is written.
func (s *Store) DeleteSaved(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.saved, id)
	if i < 0 {
		return nil
	}
	s.saved = remove(s.saved, i)
	return s.persist(SavedKey, s.saved)
}

// SetFeedback updates every copy of the poem, in history and in saved. It
// reports whether any record matched.
func (s *Store) SetFeedback(id string, f models.Feedback) (bool, error) {
	if !f.Valid() {
		return false, fmt.Errorf("invalid feedback %q", f)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inHistory := setFeedback(s.history, id, f)
	inSaved := setFeedback(s.saved, id, f)

	var errs []error
	if inHistory {
		errs = append(errs, s.persist(HistoryKey, s.history))
	}
	if inSaved {
		errs = append(errs, s.persist(SavedKey, s.saved))
	}
	return inHistory || inSaved, errors.Join(errs...)
}

func (s *Store) History() []models.PoemRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PoemRecord(nil), s.history...)
}

func (s *Store) Saved() []models.PoemRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PoemRecord(nil), s.saved...)
}

func (s *Store) IsSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.saved, id) >= 0
}

// Find looks the id up in history first, then in saved.
func (s *Store) Find(id string) (models.PoemRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.history, id); i >= 0 {
		return s.history[i], true
	}
	if i := indexOf(s.saved, id); i >= 0 {
		return s.saved[i], true
	}
	return models.PoemRecord{}, false
}

// FindByPrefix resolves an abbreviated id as typed on the command line.
func (s *Store) FindByPrefix(prefix string) (models.PoemRecord, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return models.PoemRecord{}, ErrNotFound
	}
	if r, ok := s.Find(prefix); ok {
		return r, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var match *models.PoemRecord
	for _, list := range [][]models.PoemRecord{s.history, s.saved} {
		for i := range list {
			if !strings.HasPrefix(list[i].ID, prefix) {
				continue
			}
			if match != nil && match.ID != list[i].ID {
				return models.PoemRecord{}, fmt.Errorf("%w: %s", ErrAmbiguous, prefix)
			}
			match = &list[i]
		}
	}
	if match == nil {
		return models.PoemRecord{}, fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}
	return *match, nil
}

func (s *Store) Close() {
	s.snapshots.Close()
}

func indexOf(list []models.PoemRecord, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func remove(list []models.PoemRecord, i int) []models.PoemRecord {
	out := make([]models.PoemRecord, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func setFeedback(list []models.PoemRecord, id string, f models.Feedback) bool {
	found := false
	for i := range list {
		if list[i].ID == id {
			list[i].Feedback = f
			found = true
		}
	}
	return found
}
