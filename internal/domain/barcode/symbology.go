package barcode

import (
	"fmt"
	"strings"
)

// Symbology - поддерживаемый стандарт кодирования штрихкода.
// Нулевое значение Unknown означает "нет отображаемого типа".
type Symbology int

const (
	Unknown Symbology = iota
	Code128
	QRCode
	PDF417
	Aztec
	EAN13
	EAN8
)

// Backend - селектор генератора изображения для символики.
type Backend string

const (
	BackendCode128 Backend = "code128"
	BackendQR      Backend = "qr"
	BackendPDF417  Backend = "pdf417"
	BackendAztec   Backend = "aztec"
	BackendEAN13   Backend = "ean13"
	BackendEAN8    Backend = "ean8"
)

type symbologyInfo struct {
	symbology   Symbology
	identifier  string
	backend     Backend
	displayName string
	aliases     []string
}

// registry - единственное место, где описаны символики.
// Новая символика добавляется строкой в таблицу.
var registry = []symbologyInfo{
	{Code128, "org.iso.Code128", BackendCode128, "Code 128", []string{"code128", "code-128"}},
	{QRCode, "org.iso.QRCode", BackendQR, "QR Code", []string{"qr", "qrcode"}},
	{PDF417, "org.iso.PDF417", BackendPDF417, "PDF417", []string{"pdf417"}},
	{Aztec, "org.iso.Aztec", BackendAztec, "Aztec", []string{"aztec"}},
	{EAN13, "org.gs1.EAN-13", BackendEAN13, "EAN-13", []string{"ean13", "ean-13"}},
	{EAN8, "org.iso.EAN8", BackendEAN8, "EAN-8", []string{"ean8", "ean-8"}},
}

var (
	byIdentifier = make(map[string]symbologyInfo, len(registry))
	bySymbology  = make(map[Symbology]symbologyInfo, len(registry))
	byAlias      = make(map[string]symbologyInfo)
)

func init() {
	for _, info := range registry {
		byIdentifier[info.identifier] = info
		bySymbology[info.symbology] = info
		for _, alias := range info.aliases {
			byAlias[alias] = info
		}
	}
}

// Symbologies возвращает все поддерживаемые символики в порядке таблицы.
func Symbologies() []Symbology {
	out := make([]Symbology, 0, len(registry))
	for _, info := range registry {
		out = append(out, info.symbology)
	}
	return out
}

// IdentifierFor возвращает стабильный идентификатор, который хранится в базе.
// Для Unknown возвращается пустая строка.
func IdentifierFor(s Symbology) string {
	return bySymbology[s].identifier
}

// SymbologyFor разбирает сохраненный идентификатор. Сравнение точное,
// с учетом регистра; неизвестная строка дает (Unknown, false), а не ошибку.
func SymbologyFor(identifier string) (Symbology, bool) {
	info, ok := byIdentifier[identifier]
	if !ok {
		return Unknown, false
	}
	return info.symbology, true
}

// ParseSymbology принимает либо идентификатор, либо короткий псевдоним из CLI (qr, ean13, ...).
func ParseSymbology(s string) (Symbology, error) {
	if sym, ok := SymbologyFor(s); ok {
		return sym, nil
	}
	if info, ok := byAlias[strings.ToLower(strings.TrimSpace(s))]; ok {
		return info.symbology, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownSymbology, s)
}

// Identifier - то же, что IdentifierFor(s).
func (s Symbology) Identifier() string {
	return IdentifierFor(s)
}

// Backend возвращает селектор генератора; для Unknown - пустая строка.
func (s Symbology) Backend() Backend {
	return bySymbology[s].backend
}

// Valid сообщает, входит ли значение в список поддерживаемых.
func (s Symbology) Valid() bool {
	_, ok := bySymbology[s]
	return ok
}

// String возвращает человекочитаемое название.
func (s Symbology) String() string {
	if info, ok := bySymbology[s]; ok {
		return info.displayName
	}
	return "Unknown"
}

// Aliases возвращает короткие имена для CLI.
func (s Symbology) Aliases() []string {
	return append([]string(nil), bySymbology[s].aliases...)
}
