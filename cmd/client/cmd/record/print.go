package record

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"codekeeper/internal/domain/barcode"
)

const noName = "Без названия"

func title(rec barcode.Record) string {
	if rec.Name == "" {
		return noName
	}
	return rec.Name
}

func symbologyLabel(rec barcode.Record) string {
	if s, ok := rec.Symbology(); ok {
		return s.String()
	}
	if rec.SymbologyID == "" {
		return "не указан"
	}
	return rec.SymbologyID + " (неизвестный)"
}

func printRecordsSimple(w io.Writer, records []barcode.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	fmt.Fprintf(w, "Найдено записей: %d\n\n", len(records))

	for i, rec := range records {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, title(rec), symbologyLabel(rec))
		fmt.Fprintf(w, "   Значение: %s\n", rec.Payload)
		fmt.Fprintf(w, "   ID: %s | Создано: %s\n", rec.ID, rec.CreatedAt.Local().Format("2006-01-02"))
		fmt.Fprintln(w)
	}

	return nil
}

func printRecordsTable(w io.Writer, records []barcode.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tНазвание\tЗначение\tТип\tСоздано\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t\n")

	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			rec.ID,
			truncate(title(rec), 30),
			truncate(rec.Payload, 30),
			symbologyLabel(rec),
			rec.CreatedAt.Local().Format("2006-01-02"),
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nВсего записей: %d\n", len(records))
	return nil
}

func printRecordsJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printRecordsYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func printRecordsCSV(w io.Writer, records []barcode.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Name", "Payload", "SymbologyID", "CreatedAt"}); err != nil {
		return err
	}

	for _, rec := range records {
		if err := cw.Write([]string{
			rec.ID.String(),
			rec.Name,
			rec.Payload,
			rec.SymbologyID,
			rec.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func printRecordHuman(w io.Writer, rec *barcode.Record) error {
	fmt.Fprintf(w, "ID:          %s\n", rec.ID)
	fmt.Fprintf(w, "Название:    %s\n", title(*rec))
	fmt.Fprintf(w, "Значение:    %s\n", rec.Payload)
	fmt.Fprintf(w, "Тип:         %s\n", symbologyLabel(*rec))
	fmt.Fprintf(w, "Создано:     %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
