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

// VendedorUseCase casos de uso CRUD para vendedores.
type VendedorUseCase struct {
	repo repository.VendedorRepository
	now  func() time.Time
}

// NewVendedorUseCase construye el caso de uso.
func NewVendedorUseCase(repo repository.VendedorRepository) *VendedorUseCase {
	return &VendedorUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los vendedores.
func (uc *VendedorUseCase) List(ctx context.Context) ([]*dto.VendedorResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendedorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVendedorResponse(v))
	}
	return out, nil
}

// GetByID obtiene un vendedor.
func (uc *VendedorUseCase) GetByID(ctx context.Context, id string) (*dto.VendedorResponse, error) {
	v, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVendedorResponse(v), nil
}

// Create valida y crea un vendedor. Email y código de empleado son únicos.
func (uc *VendedorUseCase) Create(ctx context.Context, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	v, err := validation.Vendedor(ctx, uc.repo, in, "")
	if err != nil {
		return nil, err
	}
	v.Touch(uc.now())
	if err := uc.repo.Insert(ctx, v); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toVendedorResponse(v), nil
}

// Update aplica los campos presentes en in sobre el vendedor existente.
func (uc *VendedorUseCase) Update(ctx context.Context, id string, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	cur, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	v, err := validation.Vendedor(ctx, uc.repo, mergeVendedor(cur, in), cur.ID)
	if err != nil {
		return nil, err
	}
	v.ID = cur.ID
	v.CreatedAt = cur.CreatedAt
	v.Touch(uc.now())
	if err := uc.repo.UpdateByID(ctx, cur.ID, v); err != nil {
		return nil, validation.TranslateDuplicate(err)
	}
	return toVendedorResponse(v), nil
}

// Delete elimina un vendedor y lo devuelve.
func (uc *VendedorUseCase) Delete(ctx context.Context, id string) (*dto.VendedorResponse, error) {
	v, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toVendedorResponse(v), nil
}

func (uc *VendedorUseCase) find(ctx context.Context, id string) (*entity.Vendedor, error) {
	v, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func toVendedorResponse(v *entity.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{
		ID:             v.ID,
		Name:           v.Name,
		Email:          v.Email,
		Telefono:       v.Telefono,
		Comision:       v.Comision,
		CodigoEmpleado: v.CodigoEmpleado,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}
