package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"

	"codekeeper/internal/domain/barcode"
)

// terminalLinearRows - высота линейного кода в строках терминала.
const terminalLinearRows = 4

// Terminal рисует штрихкод символами псевдографики.
// Ошибка означает, что показать код нельзя и вызывающий должен вывести заглушку.
func (g *Generator) Terminal(payload string, s barcode.Symbology) (string, error) {
	if s == barcode.QRCode && payload != "" && isASCII(payload) {
		q, err := qrcode.New(payload, qrcode.Medium)
		if err != nil {
			return "", err
		}
		return q.ToSmallString(false), nil
	}

	base, err := g.Base(payload, s)
	if err != nil {
		return "", err
	}

	if backends[s.Backend()].linear {
		return linearBlocks(base), nil
	}
	return halfBlocks(base), nil
}

func linearBlocks(img image.Image) string {
	b := img.Bounds()
	var row strings.Builder
	for x := b.Min.X; x < b.Max.X; x++ {
		if isDark(img.At(x, b.Min.Y)) {
			row.WriteRune('█')
		} else {
			row.WriteRune(' ')
		}
	}

	line := row.String()
	var sb strings.Builder
	for i := 0; i < terminalLinearRows; i++ {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// halfBlocks упаковывает две строки пикселей в одну строку терминала.
func halfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := isDark(img.At(x, y))
			bottom := y+1 < b.Max.Y && isDark(img.At(x, y+1))
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func isDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}
