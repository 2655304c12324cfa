package models

import "time"

// Manga is a catalog entry. Country and Type are resolved references; Users
// is only read to guard deletion.
type Manga struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"nombre" gorm:"column:nombre;not null"`
	ReleaseDate time.Time `json:"fechaLanzamiento" gorm:"column:fecha_lanzamiento;type:date;not null"`
	Seasons     int       `json:"temporadas" gorm:"column:temporadas;not null"`
	IsAnimation bool      `json:"anime" gorm:"column:anime;not null;default:false"`
	IsGame      bool      `json:"juego" gorm:"column:juego;not null;default:false"`
	IsFilm      bool      `json:"pelicula" gorm:"column:pelicula;not null;default:false"`

	CountryID int64 `json:"-" gorm:"column:pais_id;not null;index"`
	TypeID    int64 `json:"-" gorm:"column:tipo_id;not null;index"`

	// associations
	Country Country `json:"pais" gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT;"`
	Type    Type    `json:"tipo" gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT;"`
	Users   []User  `json:"-" gorm:"many2many:manga_usuario;joinForeignKey:MangaID;joinReferences:UsuarioID;constraint:OnDelete:RESTRICT;"`
}

func (Manga) TableName() string {
	return "manga"
}

// HasUsers reports whether any user is associated with the manga.
func (m *Manga) HasUsers() bool {
	return len(m.Users) > 0
}
