package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mangacatalog/internal/microservices/http-api/apperr"
	"mangacatalog/internal/microservices/http-api/dto"
	"mangacatalog/internal/microservices/http-api/models"
	"mangacatalog/internal/microservices/http-api/repository"
	"mangacatalog/internal/notify"
)

type MangaService interface {
	GetAll(ctx context.Context) ([]models.Manga, error)
	GetByID(ctx context.Context, id int64) (*models.Manga, error)
	Create(ctx context.Context, in dto.MangaRequest) (*models.Manga, error)
	Update(ctx context.Context, id int64, in dto.MangaRequest) (*models.Manga, error)
	// Delete removes the manga and returns it as it was before deletion.
	Delete(ctx context.Context, id int64) (*models.Manga, error)
}

type mangaService struct {
	store  *repository.Store
	pub    notify.Publisher
	logger *slog.Logger
}

func NewMangaService(store *repository.Store, pub notify.Publisher, logger *slog.Logger) MangaService {
	if pub == nil {
		pub = notify.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &mangaService{store: store, pub: pub, logger: logger}
}

func (s *mangaService) GetAll(ctx context.Context) ([]models.Manga, error) {
	return s.store.Mangas.List(ctx)
}

func (s *mangaService) GetByID(ctx context.Context, id int64) (*models.Manga, error) {
	m, err := s.store.Mangas.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return m, nil
}

func (s *mangaService) Create(ctx context.Context, in dto.MangaRequest) (*models.Manga, error) {
	if verr := ValidateManga(in); verr != nil {
		return nil, verr
	}

	var created models.Manga
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		country, typ, err := resolveReferences(ctx, tx, in)
		if err != nil {
			return err
		}
		in.ApplyTo(&created)
		setReferences(&created, country, typ)
		return tx.Mangas.Save(ctx, &created)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notify.MangaCreated, &created)
	return &created, nil
}

// Update replaces every mutable field of manga id with the candidate's. The
// lookup happens before validation, so an unknown id is always NotFound.
func (s *mangaService) Update(ctx context.Context, id int64, in dto.MangaRequest) (*models.Manga, error) {
	var updated *models.Manga
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Mangas.FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err)
		}
		if verr := ValidateManga(in); verr != nil {
			return verr
		}
		country, typ, err := resolveReferences(ctx, tx, in)
		if err != nil {
			return err
		}

		in.ApplyTo(existing)
		setReferences(existing, country, typ)
		if err := tx.Mangas.Save(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notify.MangaUpdated, updated)
	return updated, nil
}

func (s *mangaService) Delete(ctx context.Context, id int64) (*models.Manga, error) {
	var deleted *models.Manga
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Mangas.FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err)
		}
		if existing.HasUsers() {
			return apperr.BadRequest(apperr.MsgHasUsers)
		}
		if err := tx.Mangas.Delete(ctx, existing); err != nil {
			// a user was attached after the check above
			if errors.Is(err, repository.ErrReferenced) {
				return apperr.BadRequest(apperr.MsgHasUsers)
			}
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notify.MangaDeleted, deleted)
	return deleted, nil
}

// resolveReferences loads the candidate's country and type. Callers must have
// validated the candidate first.
func resolveReferences(ctx context.Context, tx *repository.Store, in dto.MangaRequest) (*models.Country, *models.Type, error) {
	country, err := tx.Countries.FindByID(ctx, *in.CountryRef())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, apperr.BadRequest(apperr.MsgCountryNotFound)
		}
		return nil, nil, err
	}
	typ, err := tx.Types.FindByID(ctx, *in.TypeRef())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, apperr.BadRequest(apperr.MsgTypeNotFound)
		}
		return nil, nil, err
	}
	return country, typ, nil
}

func setReferences(m *models.Manga, country *models.Country, typ *models.Type) {
	m.CountryID, m.Country = country.ID, *country
	m.TypeID, m.Type = typ.ID, *typ
}

func notFoundOr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound()
	}
	return err
}

// publish is best effort: a broker failure never fails the request.
func (s *mangaService) publish(ctx context.Context, t notify.EventType, m *models.Manga) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := s.pub.Publish(ctx, notify.NewEvent(t, m.ID, m.Name)); err != nil {
		s.logger.Warn("event_publish_failed",
			"type", string(t),
			"manga_id", m.ID,
			"error", err.Error(),
		)
	}
}
