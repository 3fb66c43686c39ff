package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long:  `Просмотр всех сохраненных штрихкодов, отсортированных по значению.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		records, err := app.ListRecords(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		out := cmd.OutOrStdout()
		switch listFormat {
		case "json":
			return printRecordsJSON(out, records)
		case "yaml":
			return printRecordsYAML(out, records)
		case "table":
			return printRecordsTable(out, records)
		case "csv":
			return printRecordsCSV(out, records)
		case "simple", "":
			return printRecordsSimple(out, records)
		default:
			return fmt.Errorf("неизвестный формат %q", listFormat)
		}
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json, yaml, csv)")
}
