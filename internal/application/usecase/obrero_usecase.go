package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/validation"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// ObreroUseCase casos de uso de obreros y cálculo de salario.
type ObreroUseCase struct {
	repo repository.ObreroRepository
	now  func() time.Time
}

// NewObreroUseCase construye el caso de uso.
func NewObreroUseCase(repo repository.ObreroRepository) *ObreroUseCase {
	return &ObreroUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los obreros.
func (uc *ObreroUseCase) List(ctx context.Context) ([]*dto.ObreroResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ObreroResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toObreroResponse(o))
	}
	return out, nil
}

// GetByID obtiene un obrero.
func (uc *ObreroUseCase) GetByID(ctx context.Context, id string) (*dto.ObreroResponse, error) {
	o, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toObreroResponse(o), nil
}

// Salario calcula el salario del obrero (horas × tarifa).
func (uc *ObreroUseCase) Salario(ctx context.Context, id string) (*dto.SalarioResponse, error) {
	o, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SalarioResponse{
		ID:              o.ID,
		NombreCompleto:  o.NombreCompleto,
		HorasTrabajadas: o.HorasTrabajadas,
		Salario:         o.Salario().InexactFloat64(),
	}, nil
}

// Create valida y crea un obrero.
func (uc *ObreroUseCase) Create(ctx context.Context, in dto.ObreroRequest) (*dto.ObreroResponse, error) {
	o, err := validation.Obrero(in)
	if err != nil {
		return nil, err
	}
	o.Touch(uc.now())
	if err := uc.repo.Insert(ctx, o); err != nil {
		return nil, err
	}
	return toObreroResponse(o), nil
}

// Update aplica los campos presentes en in sobre el obrero existente.
func (uc *ObreroUseCase) Update(ctx context.Context, id string, in dto.ObreroRequest) (*dto.ObreroResponse, error) {
	cur, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	o, err := validation.Obrero(mergeObrero(cur, in))
	if err != nil {
		return nil, err
	}
	o.ID = cur.ID
	o.CreatedAt = cur.CreatedAt
	o.Touch(uc.now())
	if err := uc.repo.UpdateByID(ctx, cur.ID, o); err != nil {
		return nil, err
	}
	return toObreroResponse(o), nil
}

// Delete elimina un obrero y lo devuelve.
func (uc *ObreroUseCase) Delete(ctx context.Context, id string) (*dto.ObreroResponse, error) {
	o, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toObreroResponse(o), nil
}

func (uc *ObreroUseCase) find(ctx context.Context, id string) (*entity.Obrero, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func toObreroResponse(o *entity.Obrero) *dto.ObreroResponse {
	return &dto.ObreroResponse{
		ID:              o.ID,
		NombreCompleto:  o.NombreCompleto,
		HorasTrabajadas: o.HorasTrabajadas,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
