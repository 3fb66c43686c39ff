package barcode

import (
	"time"

	"github.com/google/uuid"
)

// RecordID - синтетический ключ записи.
type RecordID string

// NewRecordID генерирует новый идентификатор записи.
func NewRecordID() RecordID {
	return RecordID(uuid.NewString())
}

// ParseRecordID проверяет строку из CLI.
func ParseRecordID(s string) (RecordID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", ErrInvalidID
	}
	return RecordID(id.String()), nil
}

func (id RecordID) String() string {
	return string(id)
}

// Record - сохраненный штрихкод.
type Record struct {
	ID          RecordID  `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Payload     string    `json:"payload" yaml:"payload"`
	SymbologyID string    `json:"symbology_id,omitempty" yaml:"symbology_id,omitempty"`
	Checksum    string    `json:"-" yaml:"-"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Symbology разбирает SymbologyID. Неизвестное или пустое значение
// дает (Unknown, false): запись показывается, но без изображения.
func (r Record) Symbology() (Symbology, bool) {
	return SymbologyFor(r.SymbologyID)
}

// Capture - результат одной сессии сканирования.
type Capture struct {
	Payload     string
	SymbologyID string
}
