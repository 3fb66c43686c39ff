package memory

import (
	"context"
	"sort"
	"sync"

	"codekeeper/internal/domain/barcode"
)

// RecordRepository - in-memory хранилище, используется если SQLite недоступен.
type RecordRepository struct {
	mu      sync.RWMutex
	records map[barcode.RecordID]barcode.Record
}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		records: make(map[barcode.RecordID]barcode.Record),
	}
}

func (m *RecordRepository) Create(_ context.Context, record *barcode.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.ID] = *record
	return nil
}

func (m *RecordRepository) List(_ context.Context) ([]barcode.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]barcode.Record, 0, len(m.records))
	for _, record := range m.records {
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Payload != records[j].Payload {
			return records[i].Payload < records[j].Payload
		}
		return records[i].ID < records[j].ID
	})

	return records, nil
}

func (m *RecordRepository) Get(_ context.Context, id barcode.RecordID) (*barcode.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[id]
	if !exists {
		return nil, barcode.ErrNotFound
	}
	return &record, nil
}

func (m *RecordRepository) Delete(_ context.Context, ids []barcode.RecordID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if _, exists := m.records[id]; exists {
			delete(m.records, id)
			removed++
		}
	}
	return removed, nil
}

func (m *RecordRepository) FindByChecksum(_ context.Context, checksum string) ([]barcode.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found []barcode.Record
	for _, record := range m.records {
		if record.Checksum == checksum {
			found = append(found, record)
		}
	}
	return found, nil
}
