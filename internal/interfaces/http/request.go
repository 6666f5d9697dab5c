package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
)

// logoField nombre del campo multipart que trae el archivo de logo.
const logoField = "logo"

// empresaInput campos recibidos en el cuerpo, ya sea multipart, urlencoded o JSON.
// Un campo ausente o JSON null no aparece en el mapa.
type empresaInput struct {
	fields map[string]string
	logo   *dto.LogoUpload
}

func (in empresaInput) str(key string) string {
	return in.fields[key]
}

// ptr devuelve nil si el campo falta o viene vacío (convención de PATCH).
func (in empresaInput) ptr(key string) *string {
	v, ok := in.fields[key]
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (in empresaInput) createRequest() dto.CreateEmpresaRequest {
	return dto.CreateEmpresaRequest{
		RUC:         in.str("ruc"),
		RazonSocial: in.str("razon_social"),
		Correo:      in.str("correo"),
		Direccion:   in.str("direccion"),
		Telefono:    in.str("telefono"),
		PaginaWeb:   in.str("pagina_web"),
	}
}

func (in empresaInput) replaceRequest() dto.ReplaceEmpresaRequest {
	return dto.ReplaceEmpresaRequest{
		RazonSocial: in.str("razon_social"),
		Correo:      in.str("correo"),
		Direccion:   in.str("direccion"),
		Telefono:    in.str("telefono"),
		PaginaWeb:   in.str("pagina_web"),
	}
}

func (in empresaInput) patchRequest() dto.PatchEmpresaRequest {
	return dto.PatchEmpresaRequest{
		RazonSocial: in.ptr("razon_social"),
		Correo:      in.ptr("correo"),
		Direccion:   in.ptr("direccion"),
		Telefono:    in.ptr("telefono"),
		PaginaWeb:   in.ptr("pagina_web"),
	}
}

// parseEmpresaInput lee el cuerpo según su Content-Type. Solo multipart admite logo.
func parseEmpresaInput(c *fiber.Ctx) (empresaInput, error) {
	in := empresaInput{fields: map[string]string{}}
	ctype := string(c.Request().Header.ContentType())

	switch {
	case strings.HasPrefix(ctype, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return in, fmt.Errorf("multipart inválido: %w", err)
		}
		for k, vs := range form.Value {
			if len(vs) > 0 {
				in.fields[k] = vs[0]
			}
		}
		if files := form.File[logoField]; len(files) > 0 {
			logo, err := readLogo(files[0])
			if err != nil {
				return in, err
			}
			in.logo = logo
		}
	case strings.HasPrefix(ctype, fiber.MIMEApplicationForm):
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			in.fields[string(k)] = string(v)
		})
	case strings.HasPrefix(ctype, fiber.MIMEApplicationJSON):
		var raw map[string]*string
		if err := c.BodyParser(&raw); err != nil {
			return in, fmt.Errorf("JSON inválido: %w", err)
		}
		for k, v := range raw {
			if v != nil {
				in.fields[k] = *v
			}
		}
	case len(c.Body()) == 0:
		// sin cuerpo: todos los campos ausentes
	default:
		return in, fmt.Errorf("Content-Type no soportado: %q", ctype)
	}
	return in, nil
}

// readLogo carga el archivo completo. Un part vacío sin nombre (input file sin seleccionar) se ignora.
func readLogo(fh *multipart.FileHeader) (*dto.LogoUpload, error) {
	if fh.Filename == "" && fh.Size == 0 {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir logo: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("leer logo: %w", err)
	}
	return &dto.LogoUpload{Filename: fh.Filename, Data: data}, nil
}
