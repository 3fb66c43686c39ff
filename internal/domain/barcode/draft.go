package barcode

import (
	"context"
	"errors"
	"fmt"
)

// DraftState - состояние процесса создания новой записи.
type DraftState int

const (
	StateIdle DraftState = iota
	StateEditing
	StateScanning
	StateCaptured
	StateSaved
	StateDiscarded
)

func (s DraftState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateScanning:
		return "scanning"
	case StateCaptured:
		return "captured"
	case StateSaved:
		return "saved"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Draft - еще не сохраненная запись. Передается по значению.
type Draft struct {
	Name        string
	Payload     string
	SymbologyID string
}

// Scanner - внешний источник результатов сканирования.
// Одна сессия дает ровно один Capture либо ErrScanCancelled.
type Scanner interface {
	Scan(ctx context.Context) (Capture, error)
}

// Saver принимает полностью сформированный черновик.
type Saver interface {
	Save(ctx context.Context, draft Draft) (RecordID, error)
}

// Flow проводит черновик через Idle -> Editing -> Scanning -> Captured -> Saved | Discarded.
// Не потокобезопасен: им владеет один интерактивный сеанс.
type Flow struct {
	state DraftState
	draft Draft
	last  DraftState
}

// NewFlow создает процесс в состоянии Idle.
func NewFlow() *Flow {
	return &Flow{state: StateIdle, last: StateIdle}
}

// State возвращает текущее состояние.
func (f *Flow) State() DraftState {
	return f.state
}

// Outcome возвращает, чем закончился последний черновик (Saved или Discarded).
func (f *Flow) Outcome() DraftState {
	return f.last
}

// Draft возвращает копию черновика.
func (f *Flow) Draft() Draft {
	return f.draft
}

// Begin начинает новый черновик.
func (f *Flow) Begin() error {
	if f.state != StateIdle {
		return f.invalid("begin")
	}
	f.draft = Draft{}
	f.state = StateEditing
	return nil
}

// SetName меняет название; доступно только до сканирования.
func (f *Flow) SetName(name string) error {
	if f.state != StateEditing {
		return f.invalid("set name")
	}
	f.draft.Name = name
	return nil
}

// StartScan переводит черновик в режим ожидания результата сканера.
func (f *Flow) StartScan() error {
	if f.state != StateEditing {
		return f.invalid("start scan")
	}
	f.state = StateScanning
	return nil
}

// Capture принимает результат сканера.
func (f *Flow) Capture(c Capture) error {
	if f.state != StateScanning {
		return f.invalid("capture")
	}
	f.draft.Payload = c.Payload
	f.draft.SymbologyID = c.SymbologyID
	f.state = StateCaptured
	return nil
}

// CancelScan возвращает черновик в Editing без данных сканирования.
func (f *Flow) CancelScan() error {
	if f.state != StateScanning {
		return f.invalid("cancel scan")
	}
	f.draft.Payload = ""
	f.draft.SymbologyID = ""
	f.state = StateEditing
	return nil
}

// Scan проводит одну сессию сканирования. Отмена возвращает черновик в Editing
// и отдает ErrScanCancelled вызывающему.
func (f *Flow) Scan(ctx context.Context, scanner Scanner) error {
	if err := f.StartScan(); err != nil {
		return err
	}

	c, err := scanner.Scan(ctx)
	if err != nil {
		if cerr := f.CancelScan(); cerr != nil {
			return cerr
		}
		if errors.Is(err, ErrScanCancelled) || errors.Is(err, context.Canceled) {
			return ErrScanCancelled
		}
		return fmt.Errorf("scan: %w", err)
	}

	return f.Capture(c)
}

// Save сохраняет черновик. Поля очищаются только после успешной записи;
// при ошибке черновик остается в Captured для повторной попытки.
func (f *Flow) Save(ctx context.Context, saver Saver) (RecordID, error) {
	if f.state != StateCaptured {
		return "", f.invalid("save")
	}

	id, err := saver.Save(ctx, f.draft)
	if err != nil {
		return "", err
	}

	f.finish(StateSaved)
	return id, nil
}

// Discard отбрасывает черновик из любого состояния, кроме Idle.
func (f *Flow) Discard() error {
	if f.state == StateIdle {
		return f.invalid("discard")
	}
	f.finish(StateDiscarded)
	return nil
}

func (f *Flow) finish(outcome DraftState) {
	f.last = outcome
	f.draft = Draft{}
	f.state = StateIdle
}

func (f *Flow) invalid(action string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, action, f.state)
}
