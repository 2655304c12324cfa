package models

// All lists the entities in dependency order, for AutoMigrate.
func All() []any {
	return []any{&Country{}, &Type{}, &User{}, &Manga{}}
}
