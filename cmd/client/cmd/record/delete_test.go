package record

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"codekeeper/internal/app/client"
	"codekeeper/internal/app/client/config"
	"codekeeper/internal/domain/barcode"
	"codekeeper/internal/scan"
)

func TestDeleteCmd_ReportsRemovedCount(t *testing.T) {
	dir := t.TempDir()
	app, err := client.New(&config.Config{
		Env:         config.EnvLocal,
		ConfigDir:   dir,
		DBPath:      filepath.Join(dir, "barcodes.db"),
		RenderScale: 1,
		OutputDir:   dir,
	}, slog.Default())
	require.NoError(t, err)
	defer app.Close()

	ctx := client.WithApp(context.Background(), app)
	id, err := app.CreateRecord(ctx, "Кофейня", scan.NewFixed("A-1", barcode.QRCode))
	require.NoError(t, err)

	var out bytes.Buffer
	deleteCmd.SetContext(ctx)
	deleteCmd.SetOut(&out)

	unknown := barcode.NewRecordID().String()
	require.NoError(t, deleteCmd.RunE(deleteCmd, []string{id.String(), unknown}))
	assert.Contains(t, out.String(), "Удалено записей: 1")

	out.Reset()
	require.NoError(t, deleteCmd.RunE(deleteCmd, []string{unknown}))
	assert.Contains(t, out.String(), "Удалено записей: 0")
}
