package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codekeeper/internal/app/client"
	"codekeeper/internal/domain/barcode"
	"codekeeper/internal/scan"
)

var (
	recordName    string
	recordPayload string
	recordType    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать новую запись",
	Long: `Создание новой записи штрихкода.

Если значение не передано через --payload, оно запрашивается
с терминала (аналог сканирования). Пустой ввод отменяет создание.

Поддерживаемые типы: code128, qr, pdf417, aztec, ean13, ean8
или полные идентификаторы (org.iso.QRCode и т.д.).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		sym, err := barcode.ParseSymbology(recordType)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		// Подсказки пишем только в интерактивном режиме
		prompts := io.Discard
		if isTerminal(cmd.InOrStdin()) {
			prompts = out
		}

		// Без --payload название и значение читаются из stdin
		name := recordName
		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("payload") {
			fmt.Fprint(prompts, "Название: ")
			line, err := in.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("ошибка чтения: %w", err)
			}
			name = strings.TrimSpace(line)
		}

		var scanner barcode.Scanner
		if cmd.Flags().Changed("payload") {
			scanner = scan.NewFixed(recordPayload, sym)
		} else {
			scanner = scan.NewPrompt(in, prompts, sym)
		}

		id, err := app.CreateRecord(cmd.Context(), name, scanner)
		if errors.Is(err, barcode.ErrScanCancelled) {
			color.New(color.FgYellow).Fprintln(out, "Сканирование отменено, запись не сохранена")
			return nil
		}
		if err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Запись создана: %s\n", id)
		return nil
	},
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	createCmd.Flags().StringVarP(&recordName, "name", "n", "", "название записи")
	createCmd.Flags().StringVarP(&recordPayload, "payload", "p", "", "значение кода (без интерактивного ввода)")
	createCmd.Flags().StringVarP(&recordType, "type", "t", "code128", "тип кода")
}
