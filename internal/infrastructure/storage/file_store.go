// Package storage persiste los PDFs generados en disco local, un archivo por
// documento ({numero}.pdf). Escritura síncrona dentro del request.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/domain"
)

var _ billing.PDFStore = (*FileStore)(nil)

// FileStore implementación de billing.PDFStore sobre un directorio local.
type FileStore struct {
	dir string
}

// NewFileStore crea el store asegurando que el directorio exista.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de PDFs: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save escribe el archivo, reemplazando cualquier versión anterior.
func (s *FileStore) Save(filename string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", filename, err)
	}
	return nil
}

// Read devuelve el contenido del archivo, o domain.ErrNotFound si no existe.
func (s *FileStore) Read(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer %s: %w", filename, err)
	}
	return data, nil
}
