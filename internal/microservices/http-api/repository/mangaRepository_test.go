package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mangacatalog/internal/microservices/http-api/models"
	"mangacatalog/internal/microservices/http-api/repository"
	"mangacatalog/internal/testutil"
)

func setupStore(t *testing.T) (*repository.Store, *gorm.DB, testutil.Fixture) {
	db := testutil.NewDB(t)
	return repository.NewStore(db), db, testutil.Seed(t, db)
}

func TestMangaRepo_FindByID(t *testing.T) {
	store, db, f := setupStore(t)
	ctx := context.Background()

	m := testutil.CreateManga(t, db, "Berserk", f.Japan, f.Manga)
	testutil.AttachUser(t, db, &m, "guts")

	t.Run("PreloadsReferences", func(t *testing.T) {
		got, err := store.Mangas.FindByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "Berserk", got.Name)
		assert.Equal(t, "Japon", got.Country.Name)
		assert.Equal(t, "Manga", got.Type.Name)
		assert.Len(t, got.Users, 1)
		assert.True(t, got.HasUsers())
	})

	t.Run("NotFound", func(t *testing.T) {
		for _, id := range []int64{9999, 0, -1} {
			_, err := store.Mangas.FindByID(ctx, id)
			assert.ErrorIs(t, err, repository.ErrNotFound, "id %d", id)
		}
	})
}

func TestMangaRepo_SaveInsertsThenUpdates(t *testing.T) {
	store, _, f := setupStore(t)
	ctx := context.Background()

	m := models.Manga{
		Name:        "Solo Leveling",
		ReleaseDate: time.Date(2018, time.March, 4, 0, 0, 0, 0, time.UTC),
		Seasons:     1,
		CountryID:   f.Korea.ID,
		Country:     f.Korea,
		TypeID:      f.Manhwa.ID,
		Type:        f.Manhwa,
	}
	require.NoError(t, store.Mangas.Save(ctx, &m))
	require.NotZero(t, m.ID)
	firstID := m.ID

	m.Name = "Solo Leveling: Ragnarok"
	m.Seasons = 2
	m.CountryID, m.Country = f.Japan.ID, f.Japan
	require.NoError(t, store.Mangas.Save(ctx, &m))
	assert.Equal(t, firstID, m.ID)

	got, err := store.Mangas.FindByID(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, "Solo Leveling: Ragnarok", got.Name)
	assert.Equal(t, 2, got.Seasons)
	assert.Equal(t, "Japon", got.Country.Name)

	list, err := store.Mangas.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMangaRepo_Delete(t *testing.T) {
	store, db, f := setupStore(t)
	ctx := context.Background()

	m := testutil.CreateManga(t, db, "Akira", f.Japan, f.Manga)
	require.NoError(t, store.Mangas.Delete(ctx, &m))

	_, err := store.Mangas.FindByID(ctx, m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMangaRepo_List(t *testing.T) {
	store, db, f := setupStore(t)
	ctx := context.Background()

	testutil.CreateManga(t, db, "Monster", f.Japan, f.Manga)
	testutil.CreateManga(t, db, "Tower of God", f.Korea, f.Manhwa)

	list, err := store.Mangas.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Monster", list[0].Name)
	assert.Equal(t, "Corea del Sur", list[1].Country.Name)
	assert.Equal(t, "Manhwa", list[1].Type.Name)
}

func TestLookupRepos(t *testing.T) {
	store, _, f := setupStore(t)
	ctx := context.Background()

	countries, err := store.Countries.List(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Corea del Sur", countries[0].Name)

	c, err := store.Countries.Ensure(ctx, "Japon")
	require.NoError(t, err)
	assert.Equal(t, f.Japan.ID, c.ID)

	typ, err := store.Types.Ensure(ctx, "Manhua")
	require.NoError(t, err)
	assert.NotZero(t, typ.ID)

	types, err := store.Types.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 3)

	_, err = store.Types.FindByID(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	store, db, f := setupStore(t)
	ctx := context.Background()
	m := testutil.CreateManga(t, db, "Dororo", f.Japan, f.Manga)

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		got, err := tx.Mangas.FindByID(ctx, m.ID)
		if err != nil {
			return err
		}
		got.Name = "changed"
		if err := tx.Mangas.Save(ctx, got); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Mangas.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dororo", got.Name)
	assert.NoError(t, store.Ping(ctx))
}

func TestClassify_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_manga_usuario_manga"}
	assert.ErrorIs(t, repository.ClassifyForTest(pgErr), repository.ErrReferenced)
	assert.ErrorIs(t, repository.ClassifyForTest(gorm.ErrForeignKeyViolated), repository.ErrReferenced)

	other := errors.New("disk full")
	assert.Equal(t, other, repository.ClassifyForTest(other))
}
