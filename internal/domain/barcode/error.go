package barcode

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("barcode not found")
	ErrInvalidID         = errors.New("invalid barcode id")
	ErrPersistence       = errors.New("barcode storage write failed")
	ErrUnknownSymbology  = errors.New("unknown symbology")
	ErrScanCancelled     = errors.New("scan cancelled")
	ErrInvalidTransition = errors.New("invalid draft transition")
)
