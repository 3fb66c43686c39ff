package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id...]",
	Aliases: []string{"rm"},
	Short:   "Удалить записи",
	Long: `Удаление одной или нескольких записей по ID.

Неизвестные ID пропускаются без ошибки.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		removed, err := app.DeleteRecords(cmd.Context(), args)
		if err != nil {
			return fmt.Errorf("ошибка удаления: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Удалено записей: %d\n", removed)
		return nil
	},
}
