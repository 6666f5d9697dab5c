package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem guarda los logos como archivos planos dentro de un directorio base.
type Filesystem struct {
	basePath string
}

// NewFilesystem crea el backend y el directorio base si no existe.
func NewFilesystem(basePath string) (*Filesystem, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage: directorio base requerido")
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolver directorio base: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &Filesystem{basePath: abs}, nil
}

// BasePath devuelve el directorio absoluto donde viven los archivos.
func (f *Filesystem) BasePath() string {
	return f.basePath
}

// Stage escribe el logo con un nombre provisional y devuelve la clave definitiva y la provisional.
// El archivo publicado con esa clave, si existe, no se toca.
func (f *Filesystem) Stage(ctx context.Context, ruc, filename string, data []byte) (string, string, error) {
	key, err := LogoKey(ruc, filename)
	if err != nil {
		return "", "", err
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	staged := stagingKey(key)
	tmp := filepath.Join(f.basePath, staged)
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return "", "", fmt.Errorf("escribir archivo temporal: %w", err)
	}
	return key, staged, nil
}

// Promote publica un logo provisional bajo su clave con un rename atómico.
// Si ya existe un archivo con esa clave se sobrescribe.
func (f *Filesystem) Promote(ctx context.Context, staged, key string) error {
	src, err := f.Path(staged)
	if err != nil {
		return err
	}
	dst, err := f.Path(key)
	if err != nil {
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("publicar logo: %w", err)
	}
	return nil
}

// Retrieve lee el logo. ErrNotFound si el archivo no existe.
func (f *Filesystem) Retrieve(ctx context.Context, key string) ([]byte, error) {
	p, err := f.Path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("leer logo: %w", err)
	}
	return data, nil
}

// Delete borra el logo. No falla si el archivo ya no existe.
func (f *Filesystem) Delete(ctx context.Context, key string) error {
	p, err := f.Path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar logo: %w", err)
	}
	return nil
}

// Path devuelve la ruta absoluta del archivo para una clave válida.
func (f *Filesystem) Path(key string) (string, error) {
	if err := validKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.basePath, key), nil
}
