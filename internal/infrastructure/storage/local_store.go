// Package storage implementa el blob store de imágenes sobre disco local.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodega-api/internal/application/ports"
)

var _ ports.ImageStore = (*LocalStore)(nil)

// LocalStore guarda imágenes en un directorio local y las expone bajo una
// ruta pública. El nombre en disco es un UUID con la extensión original, así
// dos archivos subidos con el mismo nombre nunca chocan.
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore crea el directorio si no existe. publicURL es el prefijo bajo
// el que el servidor HTTP sirve el directorio (p. ej. "/uploads").
func NewLocalStore(dir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: publicURL}, nil
}

// Save escribe el contenido y devuelve la URL pública del archivo.
func (s *LocalStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear archivo %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("escribir archivo %s: %w", name, err)
	}
	return s.publicURL + "/" + name, nil
}

// Dir devuelve el directorio físico, para montarlo como estático.
func (s *LocalStore) Dir() string {
	return s.dir
}
