// Package wallet - интерактивный режим: живой список записей,
// добавление через сканер и удаление по номеру.
package wallet

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
	"codekeeper/internal/domain/barcode"
	"codekeeper/internal/scan"
)

var defaultType string

var WalletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Интерактивный режим",
	Long: `Интерактивный режим работы с записями.

Команды: list, new, save, discard, show N, del N [N...], help, quit.

Если запись не удалось сохранить, отсканированный черновик остается:
save повторяет запись, discard его отбрасывает.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		fallback, err := barcode.ParseSymbology(defaultType)
		if err != nil {
			return err
		}

		return Run(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout(), fallback)
	},
}

// Store - то, что сеансу нужно от приложения.
type Store interface {
	NewView(ctx context.Context) (*barcode.View, error)
	ScanDraft(ctx context.Context, name string, scanner barcode.Scanner) (*barcode.Flow, error)
	SaveDraft(ctx context.Context, flow *barcode.Flow) (barcode.RecordID, error)
	DeleteRecords(ctx context.Context, rawIDs []string) (int, error)
	Preview(rec barcode.Record) (string, error)
}

var _ Store = (*client.App)(nil)

type session struct {
	app      Store
	view     *barcode.View
	in       *bufio.Reader
	out      io.Writer
	fallback barcode.Symbology
	// pending - отсканированный, но не сохраненный черновик
	pending *barcode.Flow
}

// Run ведет сеанс до quit, EOF или отмены контекста.
func Run(ctx context.Context, app Store, in io.Reader, out io.Writer, fallback barcode.Symbology) error {
	view, err := app.NewView(ctx)
	if err != nil {
		return fmt.Errorf("ошибка загрузки записей: %w", err)
	}
	defer view.Close()

	s := &session{
		app:      app,
		view:     view,
		in:       bufio.NewReader(in),
		out:      out,
		fallback: fallback,
	}

	defer s.dropPending()

	s.printList()
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(s.out)
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list", "ls":
			s.printList()
		case "new", "add":
			s.create(ctx)
		case "save":
			s.save(ctx)
		case "discard":
			s.discard()
		case "show":
			s.show(fields[1:])
		case "del", "rm":
			s.delete(ctx, fields[1:])
		case "help", "?":
			s.help()
		case "quit", "exit", "q":
			return nil
		default:
			fmt.Fprintf(s.out, "Неизвестная команда %q, введите help\n", fields[0])
		}
	}
}

func (s *session) printList() {
	if err := s.view.Err(); err != nil {
		color.New(color.FgRed).Fprintf(s.out, "Список может быть устаревшим: %v\n", err)
	}

	records := s.view.Records()
	if len(records) == 0 {
		fmt.Fprintln(s.out, "Записей пока нет. Добавьте: new")
		return
	}

	for i, rec := range records {
		name := rec.Name
		if name == "" {
			name = "Без названия"
		}
		fmt.Fprintf(s.out, "%2d. %-20s %s\n", i+1, name, rec.Payload)
	}
}

func (s *session) create(ctx context.Context) {
	if s.pending != nil {
		color.New(color.FgYellow).Fprintln(s.out, "Есть несохраненный черновик: save или discard")
		return
	}

	fmt.Fprint(s.out, "Название: ")
	name, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		color.New(color.FgRed).Fprintf(s.out, "Ошибка чтения: %v\n", err)
		return
	}

	scanner := scan.NewPrompt(s.in, s.out, s.fallback)
	flow, err := s.app.ScanDraft(ctx, strings.TrimSpace(name), scanner)
	switch {
	case errors.Is(err, barcode.ErrScanCancelled):
		color.New(color.FgYellow).Fprintln(s.out, "Отменено")
		return
	case err != nil:
		color.New(color.FgRed).Fprintf(s.out, "Ошибка сканирования: %v\n", err)
		return
	}

	s.pending = flow
	s.save(ctx)
}

// save записывает ожидающий черновик; при ошибке черновик сохраняется для повтора.
func (s *session) save(ctx context.Context) {
	if s.pending == nil {
		fmt.Fprintln(s.out, "Нет черновика для сохранения")
		return
	}

	id, err := s.app.SaveDraft(ctx, s.pending)
	if err != nil {
		d := s.pending.Draft()
		color.New(color.FgRed).Fprintf(s.out, "Не удалось сохранить %q: %v\n", d.Payload, err)
		fmt.Fprintln(s.out, "Черновик сохранен: save - повторить, discard - отбросить")
		return
	}

	s.pending = nil
	color.New(color.FgGreen).Fprintf(s.out, "✓ Сохранено: %s\n", id)
	s.printList()
}

func (s *session) discard() {
	if s.pending == nil {
		fmt.Fprintln(s.out, "Нет черновика")
		return
	}
	s.dropPending()
	fmt.Fprintln(s.out, "Черновик отброшен")
}

func (s *session) dropPending() {
	if s.pending == nil {
		return
	}
	_ = s.pending.Discard()
	s.pending = nil
}

func (s *session) show(args []string) {
	recs, ok := s.pick(args)
	if !ok {
		return
	}

	for _, rec := range recs {
		art, err := s.app.Preview(rec)
		if err != nil {
			color.New(color.FgYellow).Fprintf(s.out, "[ код недоступен: %v ]\n", err)
			continue
		}
		fmt.Fprint(s.out, art)
	}
}

func (s *session) delete(ctx context.Context, args []string) {
	recs, ok := s.pick(args)
	if !ok {
		return
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID.String())
	}

	removed, err := s.app.DeleteRecords(ctx, ids)
	if err != nil {
		color.New(color.FgRed).Fprintf(s.out, "Не удалось удалить: %v\n", err)
		return
	}
	color.New(color.FgGreen).Fprintf(s.out, "✓ Удалено: %d\n", removed)
	s.printList()
}

// pick переводит номера строк текущего списка в записи.
func (s *session) pick(args []string) ([]barcode.Record, bool) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Укажите номер записи")
		return nil, false
	}

	records := s.view.Records()
	picked := make([]barcode.Record, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(records) {
			fmt.Fprintf(s.out, "Нет записи с номером %s\n", arg)
			return nil, false
		}
		picked = append(picked, records[n-1])
	}
	return picked, true
}

func (s *session) help() {
	fmt.Fprintln(s.out, `  list          показать записи
  new           добавить запись (ввод значения вместо сканирования)
  save          повторить сохранение черновика после ошибки
  discard       отбросить черновик
  show N        показать код записи N
  del N [N...]  удалить записи
  quit          выйти`)
}

func init() {
	WalletCmd.Flags().StringVarP(&defaultType, "type", "t", "qr", "тип кода по умолчанию для new")
}
