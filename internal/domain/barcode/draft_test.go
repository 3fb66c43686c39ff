package barcode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScanner struct {
	capture Capture
	err     error
}

func (s stubScanner) Scan(context.Context) (Capture, error) {
	return s.capture, s.err
}

type stubSaver struct {
	saved []Draft
	err   error
}

func (s *stubSaver) Save(_ context.Context, d Draft) (RecordID, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, d)
	return "id-1", nil
}

func TestFlow_HappyPath(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow()
	saver := &stubSaver{}

	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SetName("Gate 12"))
	require.NoError(t, flow.Scan(ctx, stubScanner{capture: Capture{Payload: "012345678905", SymbologyID: "org.gs1.EAN-13"}}))
	assert.Equal(t, StateCaptured, flow.State())

	id, err := flow.Save(ctx, saver)
	require.NoError(t, err)
	assert.Equal(t, RecordID("id-1"), id)

	require.Len(t, saver.saved, 1)
	assert.Equal(t, Draft{Name: "Gate 12", Payload: "012345678905", SymbologyID: "org.gs1.EAN-13"}, saver.saved[0])
	assert.Equal(t, StateIdle, flow.State())
	assert.Equal(t, StateSaved, flow.Outcome())
	assert.Equal(t, Draft{}, flow.Draft())
}

func TestFlow_CancelScanKeepsName(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SetName("Library"))

	err := flow.Scan(context.Background(), stubScanner{err: ErrScanCancelled})
	assert.ErrorIs(t, err, ErrScanCancelled)
	assert.Equal(t, StateEditing, flow.State())
	assert.Equal(t, Draft{Name: "Library"}, flow.Draft())

	// можно сканировать снова
	require.NoError(t, flow.Scan(context.Background(), stubScanner{capture: Capture{Payload: "X", SymbologyID: "org.iso.QRCode"}}))
	assert.Equal(t, StateCaptured, flow.State())
}

func TestFlow_ContextCancelIsCancel(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Begin())

	err := flow.Scan(context.Background(), stubScanner{err: context.Canceled})
	assert.ErrorIs(t, err, ErrScanCancelled)
	assert.Equal(t, StateEditing, flow.State())
}

func TestFlow_ScannerFailure(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Begin())

	err := flow.Scan(context.Background(), stubScanner{err: errors.New("camera unavailable")})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrScanCancelled)
	assert.Equal(t, StateEditing, flow.State())
}

func TestFlow_SaveFailurePreservesDraft(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow()
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SetName("Gym"))
	require.NoError(t, flow.Scan(ctx, stubScanner{capture: Capture{Payload: "A1", SymbologyID: "org.iso.Code128"}}))

	failing := &stubSaver{err: ErrPersistence}
	_, err := flow.Save(ctx, failing)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, StateCaptured, flow.State())
	assert.Equal(t, Draft{Name: "Gym", Payload: "A1", SymbologyID: "org.iso.Code128"}, flow.Draft())

	saver := &stubSaver{}
	_, err = flow.Save(ctx, saver)
	require.NoError(t, err)
	assert.Len(t, saver.saved, 1)
}

func TestFlow_CapturedCannotRescanOrRename(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow()
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.Scan(ctx, stubScanner{capture: Capture{Payload: "A1"}}))

	assert.ErrorIs(t, flow.SetName("other"), ErrInvalidTransition)
	assert.ErrorIs(t, flow.StartScan(), ErrInvalidTransition)
	assert.ErrorIs(t, flow.Begin(), ErrInvalidTransition)

	require.NoError(t, flow.Discard())
	assert.Equal(t, StateIdle, flow.State())
	assert.Equal(t, StateDiscarded, flow.Outcome())
	assert.Equal(t, Draft{}, flow.Draft())
}

func TestFlow_InvalidFromIdle(t *testing.T) {
	flow := NewFlow()

	_, err := flow.Save(context.Background(), &stubSaver{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, flow.Discard(), ErrInvalidTransition)
	assert.ErrorIs(t, flow.Capture(Capture{}), ErrInvalidTransition)
	assert.ErrorIs(t, flow.CancelScan(), ErrInvalidTransition)
}

func TestDraftState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "captured", StateCaptured.String())
	assert.Equal(t, "unknown", DraftState(42).String())
}
