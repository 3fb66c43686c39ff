package render

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var ErrNothingToExport = errors.New("nothing to export")

// WritePDF кладет каждое изображение на отдельную страницу PDF.
// Существующий файл перезаписывается.
func WritePDF(outFile string, pages []image.Image) error {
	if len(pages) == 0 {
		return ErrNothingToExport
	}

	tmpDir, err := os.MkdirTemp("", "codekeeper-export-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	files := make([]string, 0, len(pages))
	for i, img := range pages {
		name := filepath.Join(tmpDir, fmt.Sprintf("%04d.png", i))
		if err := imaging.Save(img, name); err != nil {
			return fmt.Errorf("save page %d: %w", i, err)
		}
		files = append(files, name)
	}

	if err := os.Remove(outFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old export: %w", err)
	}

	if err := api.ImportImagesFile(files, outFile, nil, nil); err != nil {
		return fmt.Errorf("import images into pdf: %w", err)
	}

	return nil
}
