package models

import "time"

// User (usuario) is owned by another service; the catalog only counts the
// users associated with a manga.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:nombre;not null" json:"nombre"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "usuario"
}
