package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
	"github.com/jhoicas/Empresas-api/pkg/logger"
	"github.com/jhoicas/Empresas-api/pkg/ruc"
)

// EmpresaUseCase aplica las reglas de negocio de empresas y sus logos.
// Cada operación abre una única transacción. Un logo nuevo se escribe como provisional
// antes del commit y se publica después; el reemplazado se borra al final, sin abortar
// si el borrado falla.
type EmpresaUseCase struct {
	tx      EmpresaTxRunner
	logos   LogoStore
	baseURL string
	log     *logger.Logger
	now     func() time.Time
}

// NewEmpresaUseCase construye el caso de uso. baseURL es el prefijo público de logo_url.
func NewEmpresaUseCase(tx EmpresaTxRunner, logos LogoStore, baseURL string, log *logger.Logger) *EmpresaUseCase {
	return &EmpresaUseCase{
		tx:      tx,
		logos:   logos,
		baseURL: baseURL,
		log:     log.Named("empresas"),
		now:     time.Now,
	}
}

// Create registra una empresa. Devuelve domain.ErrDuplicate si el RUC ya existe
// (sin tocar ningún archivo) y domain.ErrEmailAlreadyExists si el correo está en uso.
func (uc *EmpresaUseCase) Create(ctx context.Context, in dto.CreateEmpresaRequest, logo *dto.LogoUpload) (*dto.EmpresaResponse, error) {
	now := uc.now()
	empresa := &entity.Empresa{
		RUC:               ruc.Normalize(in.RUC),
		RazonSocial:       in.RazonSocial,
		CorreoElectronico: in.Correo,
		Direccion:         in.Direccion,
		Telefono:          in.Telefono,
		PaginaWeb:         in.PaginaWeb,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var staged, key string
	err := uc.tx.Run(ctx, func(repo repository.EmpresaRepository) error {
		existing, err := repo.GetByRUC(ctx, empresa.RUC)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if logo != nil {
			key, staged, err = uc.stageLogo(ctx, empresa.RUC, logo)
			if err != nil {
				return err
			}
			empresa.LogoPath = &key
		}
		return repo.Create(ctx, empresa)
	})
	if err != nil {
		if staged != "" {
			uc.discardLogo(ctx, staged, "create")
		}
		return nil, err
	}
	if staged != "" {
		uc.promoteLogo(ctx, staged, key)
	}

	uc.log.Info().Str("ruc", empresa.RUC).Bool("logo", empresa.HasLogo()).Msg("empresa creada")
	return uc.toResponse(empresa), nil
}

// List devuelve todas las empresas.
func (uc *EmpresaUseCase) List(ctx context.Context) ([]dto.EmpresaResponse, error) {
	var list []*entity.Empresa
	err := uc.tx.Run(ctx, func(repo repository.EmpresaRepository) error {
		var err error
		list, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *uc.toResponse(e))
	}
	return items, nil
}

// GetByRUC obtiene una empresa por RUC exacto. Devuelve domain.ErrNotFound si no existe.
func (uc *EmpresaUseCase) GetByRUC(ctx context.Context, rucKey string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.find(ctx, rucKey)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(empresa), nil
}

// Replace sobrescribe todos los campos editables (PUT). El logo solo cambia si se envía uno nuevo.
func (uc *EmpresaUseCase) Replace(ctx context.Context, rucKey string, in dto.ReplaceEmpresaRequest, logo *dto.LogoUpload) (*dto.EmpresaResponse, error) {
	return uc.update(ctx, rucKey, logo, func(e *entity.Empresa) {
		e.RazonSocial = in.RazonSocial
		e.CorreoElectronico = in.Correo
		e.Direccion = in.Direccion
		e.Telefono = in.Telefono
		e.PaginaWeb = in.PaginaWeb
	})
}

// Patch aplica solo los campos presentes (PATCH). Una cadena vacía cuenta como ausente.
func (uc *EmpresaUseCase) Patch(ctx context.Context, rucKey string, in dto.PatchEmpresaRequest, logo *dto.LogoUpload) (*dto.EmpresaResponse, error) {
	return uc.update(ctx, rucKey, logo, func(e *entity.Empresa) {
		setIfPresent(&e.RazonSocial, in.RazonSocial)
		setIfPresent(&e.CorreoElectronico, in.Correo)
		setIfPresent(&e.Direccion, in.Direccion)
		setIfPresent(&e.Telefono, in.Telefono)
		setIfPresent(&e.PaginaWeb, in.PaginaWeb)
	})
}

func (uc *EmpresaUseCase) update(ctx context.Context, rucKey string, logo *dto.LogoUpload, apply func(*entity.Empresa)) (*dto.EmpresaResponse, error) {
	rucKey = ruc.Normalize(rucKey)

	var (
		oldKey, newKey, staged string
		updated                *entity.Empresa
	)
	err := uc.tx.Run(ctx, func(repo repository.EmpresaRepository) error {
		current, err := repo.GetByRUC(ctx, rucKey)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		next := current.Clone()
		apply(next)
		if logo == nil && sameFields(current, next) {
			updated = current
			return nil
		}
		if logo != nil {
			if current.HasLogo() {
				oldKey = *current.LogoPath
			}
			newKey, staged, err = uc.stageLogo(ctx, rucKey, logo)
			if err != nil {
				return err
			}
			next.LogoPath = &newKey
		}
		next.UpdatedAt = uc.now()
		if err := repo.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		if staged != "" {
			uc.discardLogo(ctx, staged, "update")
		}
		return nil, err
	}
	if staged != "" && uc.promoteLogo(ctx, staged, newKey) && oldKey != "" && oldKey != newKey {
		uc.discardLogo(ctx, oldKey, "update")
	}

	uc.log.Info().Str("ruc", rucKey).Bool("logo_reemplazado", staged != "").Msg("empresa actualizada")
	return uc.toResponse(updated), nil
}

// Delete elimina la empresa y, tras el commit, su logo.
func (uc *EmpresaUseCase) Delete(ctx context.Context, rucKey string) (*dto.MessageResponse, error) {
	rucKey = ruc.Normalize(rucKey)

	var logoKey string
	err := uc.tx.Run(ctx, func(repo repository.EmpresaRepository) error {
		current, err := repo.GetByRUC(ctx, rucKey)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.HasLogo() {
			logoKey = *current.LogoPath
		}
		return repo.Delete(ctx, rucKey)
	})
	if err != nil {
		return nil, err
	}
	if logoKey != "" {
		uc.discardLogo(ctx, logoKey, "delete")
	}

	uc.log.Info().Str("ruc", rucKey).Msg("empresa eliminada")
	return &dto.MessageResponse{
		Message: fmt.Sprintf("Empresa con RUC %s eliminada exitosamente", rucKey),
		RUC:     rucKey,
	}, nil
}

// Logo devuelve el contenido del logo de la empresa. domain.ErrNotFound si la empresa
// no existe, no tiene logo o el archivo ya no está.
func (uc *EmpresaUseCase) Logo(ctx context.Context, rucKey string) (*dto.LogoFile, error) {
	empresa, err := uc.find(ctx, rucKey)
	if err != nil {
		return nil, err
	}
	if !empresa.HasLogo() {
		return nil, domain.ErrNotFound
	}
	data, err := uc.logos.Retrieve(ctx, *empresa.LogoPath)
	if err != nil {
		return nil, err
	}
	return &dto.LogoFile{Filename: *empresa.LogoPath, Data: data}, nil
}

func (uc *EmpresaUseCase) find(ctx context.Context, rucKey string) (*entity.Empresa, error) {
	rucKey = ruc.Normalize(rucKey)
	var empresa *entity.Empresa
	err := uc.tx.Run(ctx, func(repo repository.EmpresaRepository) error {
		var err error
		empresa, err = repo.GetByRUC(ctx, rucKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	return empresa, nil
}

func (uc *EmpresaUseCase) stageLogo(ctx context.Context, rucKey string, logo *dto.LogoUpload) (string, string, error) {
	key, staged, err := uc.logos.Stage(ctx, rucKey, logo.Filename, logo.Data)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	return key, staged, nil
}

// promoteLogo publica un logo ya confirmado en la fila. Si falla, la fila apunta a una
// clave sin archivo y Logo responde 404; se registra y se descarta el provisional.
func (uc *EmpresaUseCase) promoteLogo(ctx context.Context, staged, key string) bool {
	if err := uc.logos.Promote(ctx, staged, key); err != nil {
		uc.log.Error().Err(err).Str("logo", key).Msg("no se pudo publicar el logo")
		uc.discardLogo(ctx, staged, "promote")
		return false
	}
	return true
}

// discardLogo borra un logo sin propagar el error; un fallo deja un archivo huérfano.
func (uc *EmpresaUseCase) discardLogo(ctx context.Context, key, op string) {
	if err := uc.logos.Delete(ctx, key); err != nil {
		uc.log.Warn().Err(err).Str("logo", key).Str("op", op).Msg("no se pudo borrar el logo, queda huérfano")
	}
}

func (uc *EmpresaUseCase) toResponse(e *entity.Empresa) *dto.EmpresaResponse {
	out := &dto.EmpresaResponse{
		RUC:         e.RUC,
		RazonSocial: e.RazonSocial,
		Correo:      e.CorreoElectronico,
		Direccion:   e.Direccion,
		Telefono:    e.Telefono,
		PaginaWeb:   e.PaginaWeb,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.HasLogo() {
		u := uc.baseURL + "/empresas/" + url.PathEscape(e.RUC) + "/logo"
		out.LogoURL = &u
	}
	return out
}

// sameFields compara los campos editables; las fechas no cuentan.
func sameFields(a, b *entity.Empresa) bool {
	return a.RazonSocial == b.RazonSocial &&
		a.CorreoElectronico == b.CorreoElectronico &&
		a.Direccion == b.Direccion &&
		a.Telefono == b.Telefono &&
		a.PaginaWeb == b.PaginaWeb
}

func setIfPresent(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}
