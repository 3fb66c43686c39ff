package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codekeeper/internal/app/client"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент CodeKeeper",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Создает директорию конфигурации
	2. Создает базу данных и применяет миграции
	3. Сохраняет состояние клиента`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if app.IsInitialized() {
			fmt.Fprintln(out, "Клиент уже инициализирован.")
			return nil
		}

		fmt.Fprintln(out, "=== Инициализация CodeKeeper ===")
		fmt.Fprintln(out)

		if err := app.Init(); err != nil {
			return err
		}

		cfg := app.Config()
		fmt.Fprintf(out, "Директория:  %s\n", cfg.ConfigDir)
		fmt.Fprintf(out, "База данных: %s (%s)\n", cfg.DBPath, app.Backend())
		if app.Backend() == client.BackendMemory {
			color.New(color.FgYellow).Fprintln(out, "Внимание: SQLite недоступен, записи не переживут перезапуск")
		}
		fmt.Fprintln(out)
		color.New(color.FgGreen).Fprintln(out, "✓ Готово. Добавьте первую запись: codekeeper record create")
		return nil
	},
}
