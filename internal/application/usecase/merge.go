package usecase

import (
	"strconv"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// Las actualizaciones son parciales: los campos ausentes del request toman el valor
// almacenado y el resultado se valida completo, como en la creación.

func pick[S ~string](in *S, current string) *S {
	if in != nil {
		return in
	}
	c := S(current)
	return &c
}

func mergeAuto(cur *entity.Auto, in dto.AutoRequest) dto.AutoRequest {
	out := dto.AutoRequest{
		Marca:       pick(in.Marca, cur.Marca),
		Modelo:      pick(in.Modelo, cur.Modelo),
		Anio:        in.Year(),
		Color:       pick(in.Color, cur.Color),
		NumeroSerie: pick(in.NumeroSerie, cur.NumeroSerie),
	}
	if out.Anio == nil {
		out.Anio = dto.NumeroDe(strconv.Itoa(cur.Anio))
	}
	return out
}

func mergeCliente(cur *entity.Cliente, in dto.ClienteRequest) dto.ClienteRequest {
	return dto.ClienteRequest{
		Nombre:    pick(in.Nombre, cur.Nombre),
		Email:     pick(in.Email, cur.Email),
		Telefono:  pick(in.Telefono, cur.Telefono),
		Direccion: pick(in.Direccion, cur.Direccion),
		Ciudad:    pick(in.Ciudad, cur.Ciudad),
	}
}

func mergeVendedor(cur *entity.Vendedor, in dto.VendedorRequest) dto.VendedorRequest {
	out := dto.VendedorRequest{
		Name:           pick(in.Name, cur.Name),
		Email:          pick(in.Email, cur.Email),
		Telefono:       pick(in.Telefono, cur.Telefono),
		Comision:       in.Comision,
		CodigoEmpleado: pick(in.CodigoEmpleado, cur.CodigoEmpleado),
	}
	if out.Comision == nil {
		out.Comision = dto.NumeroDe(strconv.FormatFloat(cur.Comision, 'f', -1, 64))
	}
	return out
}

func mergeConcesionaria(cur *entity.Concesionaria, in dto.ConcesionariaRequest) dto.ConcesionariaRequest {
	return dto.ConcesionariaRequest{
		Nombre:    pick(in.Nombre, cur.Nombre),
		Direccion: pick(in.Direccion, cur.Direccion),
		Telefono:  pick(in.Telefono, cur.Telefono),
		Ciudad:    pick(in.Ciudad, cur.Ciudad),
		Gerente:   pick(in.Gerente, cur.Gerente),
	}
}

func mergeObrero(cur *entity.Obrero, in dto.ObreroRequest) dto.ObreroRequest {
	out := dto.ObreroRequest{
		NombreCompleto:  pick(in.NombreCompleto, cur.NombreCompleto),
		HorasTrabajadas: in.HorasTrabajadas,
	}
	if out.HorasTrabajadas == nil {
		h := cur.HorasTrabajadas
		out.HorasTrabajadas = &h
	}
	return out
}
