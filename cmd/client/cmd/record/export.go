package record

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [id...]",
	Short: "Выгрузить коды в PDF",
	Long: `Выгрузка записей в PDF, по одному коду на страницу.

Без аргументов выгружаются все записи.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		outFile := exportOutput
		if outFile == "" {
			outFile = filepath.Join(app.Config().OutputDir, "barcodes.pdf")
		}

		n, err := app.ExportPDF(cmd.Context(), outFile, args)
		if err != nil {
			return fmt.Errorf("ошибка экспорта: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Страниц: %d, файл: %s\n", n, outFile)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "путь к PDF (по умолчанию OUTPUT_DIR/barcodes.pdf)")
}
