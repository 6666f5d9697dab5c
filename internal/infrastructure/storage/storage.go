// Package storage implementa el almacenamiento de logos de empresas.
// Las claves tienen la forma {ruc}_{nombre original} y son iguales en todos los backends.
// Un logo nuevo se escribe primero con un nombre provisional (Stage) y solo ocupa su
// clave definitiva con Promote, así un fallo previo nunca toca el logo publicado.
package storage

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Empresas-api/internal/domain"
)

// Errores del almacenamiento. ErrNotFound cumple errors.Is(err, domain.ErrNotFound).
var (
	ErrNotFound   = fmt.Errorf("storage: logo %w", domain.ErrNotFound)
	ErrInvalidKey = errors.New("storage: clave inválida")
)

// defaultFilename se usa cuando el archivo subido no trae nombre utilizable.
const defaultFilename = "logo"

// LogoKey deriva la clave de un logo a partir del RUC y el nombre original del archivo.
// Se queda con el nombre base (sin directorios) normalizado a NFC.
func LogoKey(ruc, filename string) (string, error) {
	if ruc == "" || strings.ContainsAny(ruc, `/\`) {
		return "", ErrInvalidKey
	}
	name := strings.ReplaceAll(filename, `\`, "/")
	name = path.Base(norm.NFC.String(strings.TrimSpace(name)))
	if name == "." || name == "/" || name == ".." || name == "" {
		name = defaultFilename
	}
	return ruc + "_" + name, nil
}

// stagingKey nombre provisional de un logo hasta que se publica con Promote.
func stagingKey(key string) string {
	return "." + key + "." + uuid.NewString() + ".tmp"
}

// validKey rechaza claves vacías o que intenten salir del directorio base.
func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return ErrInvalidKey
	}
	return nil
}
