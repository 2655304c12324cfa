package dto

import (
	"mangacatalog/internal/microservices/http-api/models"
)

// RefDTO is a nested reference such as "pais": {"id": 3}.
type RefDTO struct {
	ID *int64 `json:"id"`
}

// MangaRequest is the candidate record for POST /mangas and PUT /mangas/:id.
// Country and Type may come nested ("pais": {"id": 1}) or flat ("paisId": 1).
type MangaRequest struct {
	Name        string  `json:"nombre"`
	ReleaseDate *Date   `json:"fechaLanzamiento"`
	Seasons     int32   `json:"temporadas"`
	IsAnimation bool    `json:"anime"`
	IsGame      bool    `json:"juego"`
	IsFilm      bool    `json:"pelicula"`
	Country     *RefDTO `json:"pais,omitempty"`
	Type        *RefDTO `json:"tipo,omitempty"`
	CountryID   *int64  `json:"paisId,omitempty"`
	TypeID      *int64  `json:"tipoId,omitempty"`
}

// CountryRef returns the referenced country id, nil when absent.
func (r MangaRequest) CountryRef() *int64 {
	if r.Country != nil && r.Country.ID != nil {
		return r.Country.ID
	}
	return r.CountryID
}

// TypeRef returns the referenced type id, nil when absent.
func (r MangaRequest) TypeRef() *int64 {
	if r.Type != nil && r.Type.ID != nil {
		return r.Type.ID
	}
	return r.TypeID
}

// ApplyTo copies the mutable scalar fields onto m. References are resolved
// by the caller.
func (r MangaRequest) ApplyTo(m *models.Manga) {
	m.Name = r.Name
	if r.ReleaseDate != nil {
		m.ReleaseDate = r.ReleaseDate.Time
	}
	m.Seasons = int(r.Seasons)
	m.IsAnimation = r.IsAnimation
	m.IsGame = r.IsGame
	m.IsFilm = r.IsFilm
}

// MangaSummary is returned by create, update and delete.
type MangaSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Country string `json:"pais"`
	Type    string `json:"tipo"`
}

// MangaResponse is the full read view.
type MangaResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"nombre"`
	ReleaseDate Date           `json:"fechaLanzamiento"`
	Seasons     int            `json:"temporadas"`
	IsAnimation bool           `json:"anime"`
	IsGame      bool           `json:"juego"`
	IsFilm      bool           `json:"pelicula"`
	Country     LookupResponse `json:"pais"`
	Type        LookupResponse `json:"tipo"`
}

// LookupResponse is a country or type as {id, nombre}.
type LookupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// Converters
func SummaryFromModel(m models.Manga) MangaSummary {
	return MangaSummary{
		ID:      m.ID,
		Name:    m.Name,
		Country: m.Country.Name,
		Type:    m.Type.Name,
	}
}

func FromModelToResponse(m models.Manga) MangaResponse {
	return MangaResponse{
		ID:          m.ID,
		Name:        m.Name,
		ReleaseDate: Date{Time: m.ReleaseDate},
		Seasons:     m.Seasons,
		IsAnimation: m.IsAnimation,
		IsGame:      m.IsGame,
		IsFilm:      m.IsFilm,
		Country:     CountryFromModel(m.Country),
		Type:        TypeFromModel(m.Type),
	}
}

func CountryFromModel(c models.Country) LookupResponse {
	return LookupResponse{ID: c.ID, Name: c.Name}
}

func TypeFromModel(t models.Type) LookupResponse {
	return LookupResponse{ID: t.ID, Name: t.Name}
}
