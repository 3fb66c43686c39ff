package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Показать код в терминале",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := app.GetRecord(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		out := cmd.OutOrStdout()
		if err := printRecordHuman(out, rec); err != nil {
			return err
		}
		fmt.Fprintln(out)

		art, err := app.Preview(*rec)
		if err != nil {
			color.New(color.FgYellow).Fprintf(out, "[ код недоступен: %v ]\n", err)
			return nil
		}
		fmt.Fprint(out, art)
		return nil
	},
}
