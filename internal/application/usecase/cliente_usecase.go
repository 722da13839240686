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

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
	now  func() time.Time
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Create valida y crea un cliente. El email se guarda en minúsculas.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := validation.Cliente(ctx, uc.repo, in, "")
	if err != nil {
		return nil, err
	}
	c.Touch(uc.now())
	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toClienteResponse(c), nil
}

// Update aplica los campos presentes en in sobre el cliente existente.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	cur, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := validation.Cliente(ctx, uc.repo, mergeCliente(cur, in), cur.ID)
	if err != nil {
		return nil, err
	}
	c.ID = cur.ID
	c.CreatedAt = cur.CreatedAt
	c.Touch(uc.now())
	if err := uc.repo.UpdateByID(ctx, cur.ID, c); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toClienteResponse(c), nil
}

// Delete elimina un cliente y lo devuelve.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

func (uc *ClienteUseCase) find(ctx context.Context, id string) (*entity.Cliente, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		Ciudad:    c.Ciudad,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
