package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
	"github.com/aussiebroadwan/marquee/internal/marquee/store"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

// MaxPageQuantity bounds a single catalog page.
const MaxPageQuantity = 100

// NewLookup is the body for creating a lookup value.
type NewLookup struct {
	Name string `json:"name" validate:"required,max=128,printable"`
}

// NewMovie is the body for creating a movie. References are by name and
// must already exist.
type NewMovie struct {
	DistributionTitle   string  `json:"distribution_title" validate:"required,max=256"`
	OriginalTitle       string  `json:"original_title" validate:"required,max=256"`
	OriginalLanguage    string  `json:"original_language" validate:"required"`
	HasSpanishSubtitles bool    `json:"has_spanish_subtitles"`
	ProductionYear      int     `json:"production_year" validate:"gte=1850,lte=3000"`
	WebsiteURL          string  `json:"website_url" validate:"omitempty,url"`
	ImageURL            string  `json:"image_url" validate:"omitempty,url"`
	DurationHours       int     `json:"duration_hours" validate:"gte=0,lte=48"`
	Summary             *string `json:"summary" validate:"omitempty,max=4096"`
	Classification      string  `json:"classification" validate:"required"`
	OriginCountry       string  `json:"origin_country" validate:"required"`
	Genre               string  `json:"genre" validate:"required"`
}

// CatalogService serves the movie catalog. It never looks at credentials;
// the gate has already run by the time it is called.
type CatalogService struct {
	Store store.Store
}

// Page converts a page number and size into an offset and limit.
func Page(page, quantity int64) (offset, limit int64, err error) {
	if page < 0 || quantity < 1 || quantity > MaxPageQuantity {
		return 0, 0, ErrInvalidPage
	}
	if page > (1<<62)/quantity {
		return 0, 0, ErrInvalidPage
	}
	return page * quantity, quantity, nil
}

func (s *CatalogService) ListLookups(ctx context.Context, kind domain.LookupKind) ([]domain.Lookup, error) {
	out, err := s.Store.Catalog().ListLookups(ctx, kind)
	if err != nil {
		return nil, storageErr(ctx, err)
	}
	return out, nil
}

func (s *CatalogService) GetLookup(ctx context.Context, kind domain.LookupKind, id int64) (domain.Lookup, error) {
	l, err := s.Store.Catalog().GetLookup(ctx, kind, id)
	if err != nil {
		return domain.Lookup{}, storageErr(ctx, err)
	}
	return l, nil
}

func (s *CatalogService) CreateLookup(ctx context.Context, kind domain.LookupKind, in NewLookup) (domain.Lookup, error) {
	if err := validateStruct(in); err != nil {
		return domain.Lookup{}, err
	}

	l, err := s.Store.Catalog().CreateLookup(ctx, kind, in.Name)
	if err != nil {
		return domain.Lookup{}, storageErr(ctx, err)
	}

	slogx.FromContext(ctx).Info("lookup created", "kind", kind, "id", l.ID)
	return l, nil
}

func (s *CatalogService) MoviePage(ctx context.Context, page, quantity int64) ([]domain.Movie, error) {
	offset, limit, err := Page(page, quantity)
	if err != nil {
		return nil, err
	}

	out, err := s.Store.Catalog().ListMovies(ctx, offset, limit)
	if err != nil {
		return nil, storageErr(ctx, err)
	}
	return out, nil
}

func (s *CatalogService) BasicMoviePage(ctx context.Context, page, quantity int64) ([]domain.BasicMovie, error) {
	offset, limit, err := Page(page, quantity)
	if err != nil {
		return nil, err
	}

	out, err := s.Store.Catalog().ListBasicMovies(ctx, offset, limit)
	if err != nil {
		return nil, storageErr(ctx, err)
	}
	return out, nil
}

func (s *CatalogService) GetMovie(ctx context.Context, id int64) (domain.Movie, error) {
	m, err := s.Store.Catalog().GetMovie(ctx, id)
	if err != nil {
		return domain.Movie{}, storageErr(ctx, err)
	}
	return m, nil
}

// CreateMovie resolves every referenced name and inserts the movie in one
// transaction. An unknown name is an invalid request, not a missing movie.
func (s *CatalogService) CreateMovie(ctx context.Context, in NewMovie) (domain.Movie, error) {
	if err := validateStruct(in); err != nil {
		return domain.Movie{}, err
	}

	var id int64
	err := s.Store.WithTx(ctx, func(tx store.Repos) error {
		cat := tx.Catalog()

		resolve := func(kind domain.LookupKind, name string) (int64, error) {
			ref, err := cat.LookupIDByName(ctx, kind, name)
			if errors.Is(err, store.ErrNotFound) {
				return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidRequest, kind, name)
			}
			return ref, err
		}

		rec := domain.MovieRecord{
			DistributionTitle:   in.DistributionTitle,
			OriginalTitle:       in.OriginalTitle,
			HasSpanishSubtitles: in.HasSpanishSubtitles,
			ProductionYear:      in.ProductionYear,
			WebsiteURL:          in.WebsiteURL,
			ImageURL:            in.ImageURL,
			DurationHours:       in.DurationHours,
			Summary:             in.Summary,
		}

		var err error
		if rec.OriginalLanguageID, err = resolve(domain.LookupLanguage, in.OriginalLanguage); err != nil {
			return err
		}
		if rec.OriginCountryID, err = resolve(domain.LookupCountry, in.OriginCountry); err != nil {
			return err
		}
		if rec.GenreID, err = resolve(domain.LookupGenre, in.Genre); err != nil {
			return err
		}
		if rec.ClassificationID, err = resolve(domain.LookupClassification, in.Classification); err != nil {
			return err
		}

		id, err = cat.CreateMovie(ctx, rec)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			return domain.Movie{}, err
		}
		return domain.Movie{}, storageErr(ctx, err)
	}

	slogx.FromContext(ctx).Info("movie created", "movie_id", id)
	return s.GetMovie(ctx, id)
}

// storageErr maps store sentinels to service ones and logs anything else.
func storageErr(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrAlreadyExists
	default:
		slogx.FromContext(ctx).Error("catalog storage failed", "error", err)
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
}
