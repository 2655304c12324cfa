package models

// Country (pais) is a lookup referenced by Manga. Never mutated by the API.
type Country struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"nombre" gorm:"column:nombre;uniqueIndex;not null"`
}

func (Country) TableName() string {
	return "pais"
}
