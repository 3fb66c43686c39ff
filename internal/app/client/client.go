package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"codekeeper/internal/app/client/config"
	"codekeeper/internal/domain/barcode"
	"codekeeper/internal/infrastructure/migration"
	"codekeeper/internal/infrastructure/storage/memory"
	"codekeeper/internal/infrastructure/storage/sqlite"
	"codekeeper/internal/render"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type App struct {
	config    *config.Config
	log       *slog.Logger
	storage   *sqlite.Storage
	backend   string
	service   *barcode.Service
	generator *render.Generator
	state     *AppState
	mu        sync.RWMutex
}

// AppState хранит состояние приложения между запусками
type AppState struct {
	Initialized   bool      `json:"initialized"`
	InitializedAt time.Time `json:"initialized_at"`
	LastExport    time.Time `json:"last_export,omitempty"`
	LastExportTo  string    `json:"last_export_to,omitempty"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	return newApp(cfg, log, migration.DefaultEngine)
}

func newApp(cfg *config.Config, log *slog.Logger, engine migration.MigrationEngine) (*App, error) {
	if cfg == nil {
		return nil, errors.New("конфигурация не задана")
	}

	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", "error", err)
		state = &AppState{}
	}

	app := &App{
		config:    cfg,
		log:       log,
		generator: render.NewGenerator(cfg.RenderScale, log),
		state:     state,
	}

	// Локальное хранилище: SQLite, при ошибке - память
	var repo barcode.Repository
	storage, err := sqlite.New(cfg.DBPath, engine)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		repo = memory.NewRecordRepository()
		app.backend = BackendMemory
	} else {
		repo = sqlite.NewRecordRepository(storage, log)
		app.storage = storage
		app.backend = BackendSQLite
	}

	app.service = barcode.NewService(repo, log)

	log.Debug("Клиент готов", "backend", app.backend, "db", cfg.DBPath, "scale", app.generator.Scale())

	return app, nil
}

func statePath(cfg *config.Config) string {
	return filepath.Join(cfg.ConfigDir, "state.json")
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	data, err := os.ReadFile(statePath(cfg))
	if errors.Is(err, os.ErrNotExist) {
		return &AppState{}, nil
	}
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func (a *App) saveAppState() error {
	if err := os.MkdirAll(a.config.ConfigDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(statePath(a.config), data, 0600)
}

// Init создает директорию конфигурации и отмечает клиент как инициализированный.
func (a *App) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state.Initialized {
		return nil
	}

	a.state.Initialized = true
	a.state.InitializedAt = time.Now().UTC()
	if err := a.saveAppState(); err != nil {
		a.state.Initialized = false
		return fmt.Errorf("ошибка сохранения состояния: %w", err)
	}

	a.log.Info("Клиент инициализирован", "config_dir", a.config.ConfigDir)
	return nil
}

// IsInitialized проверяет, инициализирован ли клиент
func (a *App) IsInitialized() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.Initialized
}

func (a *App) State() AppState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return *a.state
}

func (a *App) Config() *config.Config {
	return a.config
}

// Backend возвращает имя активного хранилища: sqlite или memory.
func (a *App) Backend() string {
	return a.backend
}

func (a *App) Service() *barcode.Service {
	return a.service
}

func (a *App) Generator() *render.Generator {
	return a.generator
}

// ScanDraft начинает черновик с названием name и проводит одну сессию сканирования.
// Возвращает черновик в состоянии Captured; при отмене - barcode.ErrScanCancelled.
func (a *App) ScanDraft(ctx context.Context, name string, scanner barcode.Scanner) (*barcode.Flow, error) {
	flow := barcode.NewFlow()
	if err := flow.Begin(); err != nil {
		return nil, err
	}
	if err := flow.SetName(name); err != nil {
		return nil, err
	}

	if err := flow.Scan(ctx, scanner); err != nil {
		_ = flow.Discard()
		return nil, err
	}

	return flow, nil
}

// SaveDraft сохраняет отсканированный черновик. При ошибке записи черновик
// остается в Captured, и SaveDraft можно вызвать снова без повторного сканирования.
func (a *App) SaveDraft(ctx context.Context, flow *barcode.Flow) (barcode.RecordID, error) {
	id, err := flow.Save(ctx, a.service)
	if err != nil {
		return "", fmt.Errorf("ошибка сохранения записи: %w", err)
	}
	return id, nil
}

// CreateRecord - сканирование и сохранение за один вызов, для неинтерактивного create.
// Если сканирование отменено, возвращается barcode.ErrScanCancelled и ничего не сохраняется.
func (a *App) CreateRecord(ctx context.Context, name string, scanner barcode.Scanner) (barcode.RecordID, error) {
	flow, err := a.ScanDraft(ctx, name, scanner)
	if err != nil {
		return "", err
	}
	return a.SaveDraft(ctx, flow)
}

func (a *App) ListRecords(ctx context.Context) ([]barcode.Record, error) {
	return a.service.List(ctx)
}

func (a *App) GetRecord(ctx context.Context, rawID string) (*barcode.Record, error) {
	id, err := barcode.ParseRecordID(rawID)
	if err != nil {
		return nil, err
	}
	return a.service.Get(ctx, id)
}

// DeleteRecords удаляет записи по строковым ID и возвращает число удаленных.
// Все ID проверяются до удаления.
func (a *App) DeleteRecords(ctx context.Context, rawIDs []string) (int, error) {
	ids, err := parseIDs(rawIDs)
	if err != nil {
		return 0, err
	}
	return a.service.Delete(ctx, ids...)
}

func parseIDs(rawIDs []string) ([]barcode.RecordID, error) {
	ids := make([]barcode.RecordID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := barcode.ParseRecordID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Render строит изображение записи. Ошибок нет: недоступный код заменяется заглушкой.
func (a *App) Render(rec barcode.Record) render.Result {
	return a.generator.RenderRecord(rec)
}

// SaveImage сохраняет PNG записи. Пустой path означает OUTPUT_DIR/<id>.png.
func (a *App) SaveImage(rec barcode.Record, path string) (string, render.Result, error) {
	if path == "" {
		path = filepath.Join(a.config.OutputDir, rec.ID.String()+".png")
	}

	res := a.Render(rec)

	f, err := os.Create(path)
	if err != nil {
		return "", res, fmt.Errorf("ошибка создания файла: %w", err)
	}
	defer f.Close()

	if err := render.WritePNG(f, res); err != nil {
		return "", res, fmt.Errorf("ошибка записи PNG: %w", err)
	}

	return path, res, nil
}

// Preview рисует запись псевдографикой для терминала.
func (a *App) Preview(rec barcode.Record) (string, error) {
	s, ok := rec.Symbology()
	if !ok {
		return "", fmt.Errorf("%w: %q", barcode.ErrUnknownSymbology, rec.SymbologyID)
	}
	return a.generator.Terminal(rec.Payload, s)
}

// ExportPDF выгружает записи в PDF, по одной на страницу.
// Без ID выгружаются все записи в порядке списка.
func (a *App) ExportPDF(ctx context.Context, outFile string, rawIDs []string) (int, error) {
	records, err := a.selectRecords(ctx, rawIDs)
	if err != nil {
		return 0, err
	}

	pages := make([]image.Image, 0, len(records))
	for _, rec := range records {
		res := a.Render(rec)
		if res.Unavailable {
			a.log.Warn("Код недоступен, в PDF будет заглушка", "id", rec.ID, "error", res.Err)
		}
		pages = append(pages, res.Image)
	}

	if err := render.WritePDF(outFile, pages); err != nil {
		return 0, err
	}

	a.mu.Lock()
	a.state.LastExport = time.Now().UTC()
	a.state.LastExportTo = outFile
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	return len(pages), nil
}

func (a *App) selectRecords(ctx context.Context, rawIDs []string) ([]barcode.Record, error) {
	if len(rawIDs) == 0 {
		return a.service.List(ctx)
	}

	ids, err := parseIDs(rawIDs)
	if err != nil {
		return nil, err
	}

	records := make([]barcode.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := a.service.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("запись %s: %w", id, err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// NewView открывает живой список записей, обновляемый после каждого изменения.
func (a *App) NewView(ctx context.Context) (*barcode.View, error) {
	return barcode.NewView(ctx, a.service, a.log)
}

func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия хранилища: %w", err)
	}
	a.log.Debug("Хранилище закрыто")
	return nil
}
