package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
)

var outputFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть запись",
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
		switch outputFormat {
		case "json":
			return printRecordsJSON(out, rec)
		case "yaml":
			return printRecordsYAML(out, rec)
		default:
			return printRecordHuman(out, rec)
		}
	},
}

func init() {
	GetCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "формат вывода (text, json, yaml)")
}
