package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/aztec"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/pdf417"
	"github.com/skip2/go-qrcode"

	"codekeeper/internal/domain/barcode"
)

// linearHeight - высота линейного штрихкода до масштабирования, в пикселях.
const linearHeight = 32

const (
	pdf417SecurityLevel = 2
	aztecMinECCPercent  = 33
	aztecAutoLayers     = 0
)

var ErrInvalidLength = errors.New("invalid payload length for symbology")

type encoder struct {
	encode func(payload string) (image.Image, error)
	linear bool
}

var backends = map[barcode.Backend]encoder{
	barcode.BackendCode128: {encode: encodeCode128, linear: true},
	barcode.BackendQR:      {encode: encodeQR},
	barcode.BackendPDF417:  {encode: encodePDF417},
	barcode.BackendAztec:   {encode: encodeAztec},
	barcode.BackendEAN13:   {encode: eanEncoder(12, 13), linear: true},
	barcode.BackendEAN8:    {encode: eanEncoder(7, 8), linear: true},
}

func encodeCode128(payload string) (image.Image, error) {
	code, err := code128.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("code128: %w", err)
	}
	return stretchLinear(code)
}

// encodeQR строит QR с уровнем коррекции M, один модуль = один пиксель, без рамки.
func encodeQR(payload string) (image.Image, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	q.DisableBorder = true

	bitmap := q.Bitmap()
	size := len(bitmap)
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img, nil
}

func encodePDF417(payload string) (image.Image, error) {
	code, err := pdf417.Encode(payload, pdf417SecurityLevel)
	if err != nil {
		return nil, fmt.Errorf("pdf417: %w", err)
	}
	return code, nil
}

func encodeAztec(payload string) (image.Image, error) {
	code, err := aztec.Encode([]byte(payload), aztecMinECCPercent, aztecAutoLayers)
	if err != nil {
		return nil, fmt.Errorf("aztec: %w", err)
	}
	return code, nil
}

// eanEncoder принимает код без контрольной цифры или с ней.
// ean.Encode сам выбирает EAN-8/EAN-13 по длине, поэтому длину проверяем здесь.
func eanEncoder(withoutCheck, withCheck int) func(string) (image.Image, error) {
	return func(payload string) (image.Image, error) {
		if n := len(payload); n != withoutCheck && n != withCheck {
			return nil, fmt.Errorf("%w: got %d digits, want %d or %d", ErrInvalidLength, n, withoutCheck, withCheck)
		}
		code, err := ean.Encode(payload)
		if err != nil {
			return nil, fmt.Errorf("ean: %w", err)
		}
		return stretchLinear(code)
	}
}

// stretchLinear дает линейному коду высоту linearHeight, ширина остается в модулях.
func stretchLinear(code bc.Barcode) (image.Image, error) {
	width := code.Bounds().Dx()
	scaled, err := bc.Scale(code, width, linearHeight)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	return scaled, nil
}
