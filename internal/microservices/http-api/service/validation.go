package service

import (
	"mangacatalog/internal/microservices/http-api/apperr"
	"mangacatalog/internal/microservices/http-api/dto"
)

const (
	MsgNameRequired        = "El campo nombre es obligatorio"
	MsgReleaseDateRequired = "El campo fechaLanzamiento es obligatorio"
	MsgSeasonsRequired     = "El campo temporadas es obligatorio"
	MsgCountryRequired     = "El campo paisId es obligatorio"
	MsgTypeRequired        = "El campo tipoId es obligatorio"
)

// ValidateManga checks the required fields of a candidate in a fixed order and
// returns the first failure as a ready-to-send BadRequest, or nil.
// Zero seasons counts as missing.
func ValidateManga(in dto.MangaRequest) *apperr.Error {
	switch {
	case in.Name == "":
		return apperr.BadRequest(MsgNameRequired)
	case !in.ReleaseDate.IsSet():
		return apperr.BadRequest(MsgReleaseDateRequired)
	case in.Seasons == 0:
		return apperr.BadRequest(MsgSeasonsRequired)
	case in.CountryRef() == nil:
		return apperr.BadRequest(MsgCountryRequired)
	case in.TypeRef() == nil:
		return apperr.BadRequest(MsgTypeRequired)
	}
	return nil
}
