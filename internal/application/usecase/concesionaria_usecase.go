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

// ConcesionariaUseCase casos de uso CRUD para concesionarias.
// Eliminar una concesionaria no afecta a autos ni vendedores.
type ConcesionariaUseCase struct {
	repo repository.ConcesionariaRepository
	now  func() time.Time
}

// NewConcesionariaUseCase construye el caso de uso.
func NewConcesionariaUseCase(repo repository.ConcesionariaRepository) *ConcesionariaUseCase {
	return &ConcesionariaUseCase{repo: repo, now: time.Now}
}

// List devuelve todas las concesionarias.
func (uc *ConcesionariaUseCase) List(ctx context.Context) ([]*dto.ConcesionariaResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConcesionariaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toConcesionariaResponse(c))
	}
	return out, nil
}

// GetByID obtiene una concesionaria.
func (uc *ConcesionariaUseCase) GetByID(ctx context.Context, id string) (*dto.ConcesionariaResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toConcesionariaResponse(c), nil
}

// Create valida y crea una concesionaria.
func (uc *ConcesionariaUseCase) Create(ctx context.Context, in dto.ConcesionariaRequest) (*dto.ConcesionariaResponse, error) {
	c, err := validation.Concesionaria(ctx, uc.repo, in, "")
	if err != nil {
		return nil, err
	}
	c.Touch(uc.now())
	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toConcesionariaResponse(c), nil
}

// Update aplica los campos presentes en in sobre la concesionaria existente.
func (uc *ConcesionariaUseCase) Update(ctx context.Context, id string, in dto.ConcesionariaRequest) (*dto.ConcesionariaResponse, error) {
	cur, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := validation.Concesionaria(ctx, uc.repo, mergeConcesionaria(cur, in), cur.ID)
	if err != nil {
		return nil, err
	}
	c.ID = cur.ID
	c.CreatedAt = cur.CreatedAt
	c.Touch(uc.now())
	if err := uc.repo.UpdateByID(ctx, cur.ID, c); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toConcesionariaResponse(c), nil
}

// Delete elimina una concesionaria y la devuelve.
func (uc *ConcesionariaUseCase) Delete(ctx context.Context, id string) (*dto.ConcesionariaResponse, error) {
	c, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toConcesionariaResponse(c), nil
}

func (uc *ConcesionariaUseCase) find(ctx context.Context, id string) (*entity.Concesionaria, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func toConcesionariaResponse(c *entity.Concesionaria) *dto.ConcesionariaResponse {
	return &dto.ConcesionariaResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		Ciudad:    c.Ciudad,
		Gerente:   c.Gerente,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
