package record

import (
	"github.com/spf13/cobra"
)

// RecordCmd - родительская команда для всех операций с записями
var RecordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"records", "r"},
	Short:   "Управление записями",
	Long:    `Создание, просмотр, вывод изображения и удаление сохраненных штрихкодов.`,
}

func init() {
	RecordCmd.AddCommand(createCmd)
	RecordCmd.AddCommand(ListCmd)
	RecordCmd.AddCommand(GetCmd)
	RecordCmd.AddCommand(deleteCmd)
	RecordCmd.AddCommand(renderCmd)
	RecordCmd.AddCommand(showCmd)
	RecordCmd.AddCommand(exportCmd)
}
