package barcode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestView_RefreshesOnChange(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return([]Record{{ID: "1", Payload: "B200"}}, nil).Once()
	mockRepo.On("List", mock.Anything).Return([]Record{{ID: "1", Payload: "B200"}, {ID: "2", Payload: "A100"}}, nil).Once()
	mockRepo.On("FindByChecksum", mock.Anything, mock.Anything).Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	view, err := NewView(ctx, service, slog.Default())
	require.NoError(t, err)
	defer view.Close()

	require.Len(t, view.Records(), 1)

	_, err = service.Create(ctx, "", "A100", "org.iso.Code128")
	require.NoError(t, err)

	records := view.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "A100", records[0].Payload)
	assert.NoError(t, view.Err())
}

func TestView_Close(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return([]Record{}, nil).Once()
	mockRepo.On("Delete", mock.Anything, mock.Anything).Return(1, nil)

	view, err := NewView(ctx, service, slog.Default())
	require.NoError(t, err)
	view.Close()

	_, err = service.Delete(ctx, "1")
	require.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestView_InitialLoadError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return(nil, errors.New("boom"))

	view, err := NewView(context.Background(), service, slog.Default())
	assert.Error(t, err)
	assert.Nil(t, view)
}

func TestView_RecordsIsCopy(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	mockRepo.On("List", mock.Anything).Return([]Record{{ID: "1", Payload: "A"}}, nil)

	view, err := NewView(context.Background(), service, slog.Default())
	require.NoError(t, err)

	records := view.Records()
	records[0].Payload = "changed"
	assert.Equal(t, "A", view.Records()[0].Payload)
}
