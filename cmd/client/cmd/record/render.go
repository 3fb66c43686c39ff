package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render [id]",
	Short: "Сохранить изображение кода в PNG",
	Long: `Генерация PNG изображения записи.

Если код построить нельзя (неизвестный тип, пустое значение,
не-ASCII символы), сохраняется заглушка.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := app.GetRecord(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		path, res, err := app.SaveImage(*rec, renderOutput)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if res.Unavailable {
			color.New(color.FgYellow).Fprintf(out, "Код недоступен (%v), сохранена заглушка\n", res.Err)
		}
		b := res.Image.Bounds()
		color.New(color.FgGreen).Fprintf(out, "✓ %s (%dx%d)\n", path, b.Dx(), b.Dy())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "путь к PNG (по умолчанию OUTPUT_DIR/<id>.png)")
}
