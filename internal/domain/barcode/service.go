package barcode

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slog"
)

// EventKind describes what changed in the store.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventDeleted EventKind = "deleted"
)

// Event is delivered to subscribers after a change has been committed.
type Event struct {
	Kind EventKind
	IDs  []RecordID
}

// Servicer is the record store used by the CLI.
type Servicer interface {
	Create(ctx context.Context, name, payload, symbologyID string) (RecordID, error)
	Save(ctx context.Context, draft Draft) (RecordID, error)
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id RecordID) (*Record, error)
	Delete(ctx context.Context, ids ...RecordID) (int, error)
	Subscribe(fn func(Event)) (unsubscribe func())
}

var (
	_ Servicer = (*Service)(nil)
	_ Saver    = (*Service)(nil)
)

// Service owns the persisted record collection.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time

	mu          sync.Mutex
	subscribers map[int]func(Event)
	nextSub     int
}

// NewService creates a new record service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		log:         log.With("component", "barcode_service"),
		now:         time.Now,
		subscribers: make(map[int]func(Event)),
	}
}

// Create stores a new record. Name and payload may be empty; an unknown
// symbology identifier is stored as is and only affects rendering.
func (s *Service) Create(ctx context.Context, name, payload, symbologyID string) (RecordID, error) {
	record := &Record{
		ID:          NewRecordID(),
		Name:        name,
		Payload:     payload,
		SymbologyID: symbologyID,
		Checksum:    Checksum(payload, symbologyID),
		CreatedAt:   s.now().UTC(),
	}

	if _, ok := SymbologyFor(symbologyID); !ok {
		s.log.Warn("saving barcode with unknown symbology", "symbology_id", symbologyID)
	}

	if dups, err := s.repo.FindByChecksum(ctx, record.Checksum); err != nil {
		s.log.Debug("duplicate lookup failed", "error", err)
	} else if len(dups) > 0 {
		s.log.Warn("barcode with the same payload already stored",
			"payload", payload,
			"existing_id", dups[0].ID,
		)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.log.Error("failed to create barcode", "payload", payload, "error", err)
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.log.Info("barcode created", "id", record.ID, "symbology_id", symbologyID)
	s.publish(Event{Kind: EventCreated, IDs: []RecordID{record.ID}})

	return record.ID, nil
}

// Save persists a fully formed draft.
func (s *Service) Save(ctx context.Context, draft Draft) (RecordID, error) {
	return s.Create(ctx, draft.Name, draft.Payload, draft.SymbologyID)
}

// List returns all records ascending by payload.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list barcodes", "error", err)
		return nil, fmt.Errorf("list barcodes: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Payload != records[j].Payload {
			return records[i].Payload < records[j].Payload
		}
		return records[i].ID < records[j].ID
	})

	return records, nil
}

// Get returns a single record.
func (s *Service) Get(ctx context.Context, id RecordID) (*Record, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get barcode: %w", err)
	}
	return record, nil
}

// Delete removes all matching records in one transaction and reports how many
// were actually removed. Unknown ids are ignored.
func (s *Service) Delete(ctx context.Context, ids ...RecordID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	removed, err := s.repo.Delete(ctx, ids)
	if err != nil {
		s.log.Error("failed to delete barcodes", "ids", ids, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.log.Info("barcodes deleted", "requested", len(ids), "removed", removed)
	if removed > 0 {
		s.publish(Event{Kind: EventDeleted, IDs: ids})
	}

	return removed, nil
}

// Subscribe registers fn to be called after every committed change.
// fn runs synchronously on the goroutine that made the change.
func (s *Service) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Service) publish(ev Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Checksum identifies a payload/symbology pair.
func Checksum(payload, symbologyID string) string {
	sum := blake2b.Sum256([]byte(symbologyID + "\x00" + payload))
	return hex.EncodeToString(sum[:])
}
