// Package render превращает (payload, символика) в растровое изображение штрихкода.
// Генерация никогда не возвращает ошибку вызывающему: при любом сбое
// отдается заглушка Placeholder.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/exp/slog"

	"codekeeper/internal/domain/barcode"
)

// DefaultScale - коэффициент увеличения по умолчанию.
const DefaultScale = 10

var (
	ErrEmptyPayload = errors.New("empty payload")
	ErrNonASCII     = errors.New("payload is not ASCII")
	ErrUnsupported  = errors.New("unsupported symbology")
)

// Result - результат генерации. Err заполнен только для диагностики.
type Result struct {
	Image       image.Image
	Unavailable bool
	Err         error
}

// Generator рендерит штрихкоды с фиксированным увеличением.
// Кэширования нет: каждый вызов строит изображение заново.
type Generator struct {
	scale int
	log   *slog.Logger
}

// NewGenerator создает генератор; scale < 1 заменяется на DefaultScale.
func NewGenerator(scale int, log *slog.Logger) *Generator {
	if scale < 1 {
		scale = DefaultScale
	}
	return &Generator{
		scale: scale,
		log:   log.With("component", "barcode_renderer"),
	}
}

// Scale возвращает коэффициент увеличения.
func (g *Generator) Scale() int {
	return g.scale
}

// Render строит изображение; при сбое возвращает заглушку.
func (g *Generator) Render(payload string, s barcode.Symbology) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = g.unavailable(payload, s, fmt.Errorf("render panic: %v", r))
		}
	}()

	base, err := g.Base(payload, s)
	if err != nil {
		return g.unavailable(payload, s, err)
	}

	b := base.Bounds()
	scaled := imaging.Resize(base, b.Dx()*g.scale, b.Dy()*g.scale, imaging.NearestNeighbor)
	if scaled.Bounds().Empty() {
		return g.unavailable(payload, s, errors.New("empty raster"))
	}

	return Result{Image: scaled}
}

// RenderIdentifier рендерит по сохраненному идентификатору символики.
// Неизвестный идентификатор дает заглушку.
func (g *Generator) RenderIdentifier(payload, symbologyID string) Result {
	s, ok := barcode.SymbologyFor(symbologyID)
	if !ok {
		return g.unavailable(payload, barcode.Unknown, fmt.Errorf("%w: %q", barcode.ErrUnknownSymbology, symbologyID))
	}
	return g.Render(payload, s)
}

// RenderRecord - то же для сохраненной записи.
func (g *Generator) RenderRecord(rec barcode.Record) Result {
	return g.RenderIdentifier(rec.Payload, rec.SymbologyID)
}

// Base возвращает изображение до увеличения (модуль = пиксель).
func (g *Generator) Base(payload string, s barcode.Symbology) (image.Image, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if !isASCII(payload) {
		return nil, ErrNonASCII
	}

	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, s)
	}
	enc, ok := backends[s.Backend()]
	if !ok {
		return nil, fmt.Errorf("%w: no encoder for backend %q", ErrUnsupported, s.Backend())
	}

	img, err := enc.encode(payload)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("backend produced empty image")
	}
	return img, nil
}

// WritePNG кодирует результат в PNG.
func WritePNG(w io.Writer, res Result) error {
	img := res.Image
	if img == nil {
		img = Placeholder()
	}
	return imaging.Encode(w, img, imaging.PNG)
}

func (g *Generator) unavailable(payload string, s barcode.Symbology, err error) Result {
	g.log.Debug("barcode image unavailable",
		"symbology", s.String(),
		"payload_len", len(payload),
		"error", err,
	)
	return Result{Image: Placeholder(), Unavailable: true, Err: err}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
