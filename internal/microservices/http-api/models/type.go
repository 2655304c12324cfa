package models

// Type (tipo) is the category lookup referenced by Manga.
type Type struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"nombre" gorm:"column:nombre;uniqueIndex;not null"`
}

func (Type) TableName() string {
	return "tipo"
}
