// Package scan содержит источники результатов сканирования.
// Само распознавание изображения с камеры - внешняя возможность;
// здесь только симулятор и ручной ввод с терминала.
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"codekeeper/internal/domain/barcode"
)

// Fixed всегда отдает одно и то же значение. Используется в тестах
// и при неинтерактивном создании записи (--payload).
type Fixed struct {
	Capture barcode.Capture
}

func NewFixed(payload string, s barcode.Symbology) *Fixed {
	return &Fixed{Capture: barcode.Capture{Payload: payload, SymbologyID: s.Identifier()}}
}

func (f *Fixed) Scan(ctx context.Context) (barcode.Capture, error) {
	if err := ctx.Err(); err != nil {
		return barcode.Capture{}, barcode.ErrScanCancelled
	}
	return f.Capture, nil
}

// Prompt - ручной ввод значения кода с терминала.
// Пустая строка вместо значения отменяет сканирование.
type Prompt struct {
	in       *bufio.Reader
	out      io.Writer
	fallback barcode.Symbology
}

// NewPrompt читает из in; in должен быть общим для всего интерактивного сеанса.
func NewPrompt(in *bufio.Reader, out io.Writer, fallback barcode.Symbology) *Prompt {
	return &Prompt{in: in, out: out, fallback: fallback}
}

func (p *Prompt) Scan(ctx context.Context) (barcode.Capture, error) {
	payload, err := p.ask(ctx, "Значение кода (Enter - отмена): ")
	if err != nil {
		return barcode.Capture{}, err
	}
	if payload == "" {
		return barcode.Capture{}, barcode.ErrScanCancelled
	}

	for {
		answer, err := p.ask(ctx, fmt.Sprintf("Тип кода [%s]: ", p.fallback.Identifier()))
		if err != nil {
			return barcode.Capture{}, err
		}
		if answer == "" {
			return barcode.Capture{Payload: payload, SymbologyID: p.fallback.Identifier()}, nil
		}

		sym, err := barcode.ParseSymbology(answer)
		if err == nil {
			return barcode.Capture{Payload: payload, SymbologyID: sym.Identifier()}, nil
		}
		fmt.Fprintf(p.out, "Неизвестный тип %q. Доступно: %s\n", answer, knownAliases())
	}
}

func (p *Prompt) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", barcode.ErrScanCancelled
	}

	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", barcode.ErrScanCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

func knownAliases() string {
	names := make([]string, 0, len(barcode.Symbologies()))
	for _, s := range barcode.Symbologies() {
		names = append(names, s.Identifier())
	}
	return strings.Join(names, ", ")
}
