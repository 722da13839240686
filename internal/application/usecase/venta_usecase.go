package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/validation"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// maxConcurrentInserts inserciones simultáneas al guardar un lote de ventas.
const maxConcurrentInserts = 8

// VentaUseCase clasifica y registra lotes de ventas.
type VentaUseCase struct {
	repo repository.VentaRepository
	now  func() time.Time
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo, now: time.Now}
}

// Procesar valida todo el lote antes de guardar nada; luego categoriza cada venta,
// la persiste y devuelve conteos y totales por categoría.
// Un lote inválido no escribe nada. Si falla una escritura en la base, las ventas ya
// insertadas se conservan (no hay transacción entre documentos), el resto se cancela y se
// devuelve el primer error.
func (uc *VentaUseCase) Procesar(ctx context.Context, in dto.ProcesarVentasRequest) (*dto.ResumenVentasResponse, error) {
	montos, err := validation.Montos(in)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	ventas := make([]*entity.Venta, len(montos))
	counts := map[string]int{}
	totals := map[string]decimal.Decimal{}
	for i, m := range montos {
		cat := entity.Categorizar(m)
		counts[cat]++
		totals[cat] = totals[cat].Add(m)
		v := &entity.Venta{Monto: m, Categoria: cat}
		v.Touch(now)
		ventas[i] = v
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentInserts)
	for _, v := range ventas {
		g.Go(func() error {
			if err := uc.repo.Insert(gctx, v); err != nil {
				return fmt.Errorf("guardar venta: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t1, t2, t3 := totals[entity.CategoriaA], totals[entity.CategoriaB], totals[entity.CategoriaC]
	return &dto.ResumenVentasResponse{
		VentasProcesadas: len(montos),
		A:                counts[entity.CategoriaA],
		B:                counts[entity.CategoriaB],
		C:                counts[entity.CategoriaC],
		T1:               t1.InexactFloat64(),
		T2:               t2.InexactFloat64(),
		T3:               t3.InexactFloat64(),
		TT:               t1.Add(t2).Add(t3).InexactFloat64(),
	}, nil
}

// List devuelve las ventas registradas.
func (uc *VentaUseCase) List(ctx context.Context) ([]*dto.VentaResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, &dto.VentaResponse{
			ID:        v.ID,
			Monto:     v.Monto.InexactFloat64(),
			Categoria: v.Categoria,
			CreatedAt: v.CreatedAt,
		})
	}
	return out, nil
}
