package record

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"codekeeper/internal/domain/barcode"
)

func sampleRecords() []barcode.Record {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return []barcode.Record{
		{ID: "0b8c5d8e-3a5f-4d8e-9c1b-2d1e6f7a8b90", Name: "Кофейня", Payload: "A-1", SymbologyID: "org.iso.QRCode", CreatedAt: created},
		{ID: "1c9d6e9f-4b6a-4e9f-8d2c-3e2f7a8b9c01", Payload: "B,2", SymbologyID: "org.iso.DataMatrix", CreatedAt: created},
	}
}

func TestPrintRecordsSimple(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecordsSimple(&buf, sampleRecords()))

	out := buf.String()
	assert.Contains(t, out, "Найдено записей: 2")
	assert.Contains(t, out, "1. Кофейня (QR Code)")
	assert.Contains(t, out, "2. Без названия (org.iso.DataMatrix (неизвестный))")

	buf.Reset()
	require.NoError(t, printRecordsSimple(&buf, nil))
	assert.Equal(t, "Записи не найдены\n", buf.String())
}

func TestPrintRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecordsTable(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, lines[0], "Значение")
	assert.Contains(t, lines[2], "A-1")
	assert.Contains(t, buf.String(), "Всего записей: 2")
}

func TestPrintRecordsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecordsCSV(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "B,2", rows[2][2])
	assert.Equal(t, "2024-03-01T10:00:00Z", rows[1][4])
}

func TestPrintRecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecordsJSON(&buf, sampleRecords()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "org.iso.QRCode", decoded[0]["symbology_id"])
	assert.NotContains(t, decoded[0], "Checksum")
}

func TestPrintRecordsYAML(t *testing.T) {
	var buf bytes.Buffer
	rec := sampleRecords()[0]
	require.NoError(t, printRecordsYAML(&buf, &rec))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "A-1", decoded["payload"])
	assert.Equal(t, "Кофейня", decoded["name"])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Длинн...", truncate("Длинное название", 8))
}
