package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"codekeeper/cmd/client/cmd/record"
	"codekeeper/cmd/client/cmd/symbology"
	"codekeeper/cmd/client/cmd/wallet"
	"codekeeper/internal/app/client"
	"codekeeper/internal/app/client/config"
	"codekeeper/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	log     *slog.Logger
	app     *client.App
)

var rootCmd = &cobra.Command{
	Use:   "codekeeper",
	Short: "CodeKeeper - хранилище штрихкодов и QR-кодов",
	Long: `CodeKeeper хранит карты лояльности, билеты и пропуска в виде
штрихкодов и показывает их снова: на экране, в PNG или в PDF.

Данные лежат локально в SQLite (~/.codekeeper/barcodes.db).`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		if app != nil {
			_ = app.Close()
		}
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if debug {
		cfg.LogLevel = "debug"
	}

	log = logger.New(cfg)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "файл настроек (.env, yaml, json или toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(record.RecordCmd)
	rootCmd.AddCommand(symbology.SymbologyCmd)
	rootCmd.AddCommand(wallet.WalletCmd)
}
