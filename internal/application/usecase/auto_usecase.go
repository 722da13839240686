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

// AutoUseCase casos de uso CRUD para autos.
type AutoUseCase struct {
	repo repository.AutoRepository
	now  func() time.Time
}

// NewAutoUseCase construye el caso de uso.
func NewAutoUseCase(repo repository.AutoRepository) *AutoUseCase {
	return &AutoUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los autos.
func (uc *AutoUseCase) List(ctx context.Context) ([]*dto.AutoResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AutoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAutoResponse(a))
	}
	return out, nil
}

// GetByID obtiene un auto; domain.ErrNotFound si no existe.
func (uc *AutoUseCase) GetByID(ctx context.Context, id string) (*dto.AutoResponse, error) {
	a, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAutoResponse(a), nil
}

// Create valida y crea un auto. El número de serie se guarda en mayúsculas.
func (uc *AutoUseCase) Create(ctx context.Context, in dto.AutoRequest) (*dto.AutoResponse, error) {
	now := uc.now()
	a, err := validation.Auto(ctx, uc.repo, in, "", now)
	if err != nil {
		return nil, err
	}
	a.Touch(now)
	if err := uc.repo.Insert(ctx, a); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toAutoResponse(a), nil
}

// Update aplica los campos presentes en in sobre el auto existente.
func (uc *AutoUseCase) Update(ctx context.Context, id string, in dto.AutoRequest) (*dto.AutoResponse, error) {
	cur, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	a, err := validation.Auto(ctx, uc.repo, mergeAuto(cur, in), cur.ID, now)
	if err != nil {
		return nil, err
	}
	a.ID = cur.ID
	a.CreatedAt = cur.CreatedAt
	a.Touch(now)
	if err := uc.repo.UpdateByID(ctx, cur.ID, a); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toAutoResponse(a), nil
}

// Delete elimina un auto y devuelve cómo estaba.
func (uc *AutoUseCase) Delete(ctx context.Context, id string) (*dto.AutoResponse, error) {
	a, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toAutoResponse(a), nil
}

func (uc *AutoUseCase) find(ctx context.Context, id string) (*entity.Auto, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func toAutoResponse(a *entity.Auto) *dto.AutoResponse {
	return &dto.AutoResponse{
		ID:          a.ID,
		Marca:       a.Marca,
		Modelo:      a.Modelo,
		Anio:        a.Anio,
		Color:       a.Color,
		NumeroSerie: a.NumeroSerie,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
