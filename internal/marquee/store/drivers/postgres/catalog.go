package postgres

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
	"github.com/jackc/pgx/v5"
)

const selectMovie = `
SELECT m.movie_id, m.distribution_title, m.original_title, l.language_name,
       m.has_spanish_subtitles, m.production_year, m.website_url, m.image_url,
       m.duration_hours, m.summary, c.classification_name
FROM movie m
INNER JOIN language l ON l.language_id = m.original_language_id
INNER JOIN classification c ON c.classification_id = m.classification_id`

type catalogRepo struct {
	q dbtx
}

func (r *catalogRepo) ListLookups(ctx context.Context, kind domain.LookupKind) ([]domain.Lookup, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s`,
		kind.IDColumn(), kind.NameColumn(), pgx.Identifier{kind.Table()}.Sanitize(), kind.IDColumn())

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Lookup, error) {
		l := domain.Lookup{Kind: kind}
		err := row.Scan(&l.ID, &l.Name)
		return l, err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Lookup{}
	}
	return out, nil
}

func (r *catalogRepo) GetLookup(ctx context.Context, kind domain.LookupKind, id int64) (domain.Lookup, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		kind.IDColumn(), kind.NameColumn(), pgx.Identifier{kind.Table()}.Sanitize(), kind.IDColumn())

	l := domain.Lookup{Kind: kind}
	if err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name); err != nil {
		return domain.Lookup{}, mapNotFound(err)
	}
	return l, nil
}

func (r *catalogRepo) LookupIDByName(ctx context.Context, kind domain.LookupKind, name string) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		kind.IDColumn(), pgx.Identifier{kind.Table()}.Sanitize(), kind.NameColumn())

	var id int64
	if err := r.q.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, mapNotFound(err)
	}
	return id, nil
}

func (r *catalogRepo) CreateLookup(ctx context.Context, kind domain.LookupKind, name string) (domain.Lookup, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		pgx.Identifier{kind.Table()}.Sanitize(), kind.NameColumn(), kind.IDColumn())

	l := domain.Lookup{Kind: kind, Name: name}
	if err := r.q.QueryRow(ctx, query, name).Scan(&l.ID); err != nil {
		return domain.Lookup{}, mapConstraint(err)
	}
	return l, nil
}

func (r *catalogRepo) ListMovies(ctx context.Context, offset, limit int64) ([]domain.Movie, error) {
	rows, err := r.q.Query(ctx, selectMovie+` ORDER BY m.movie_id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, err
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Movie, error) {
		return scanMovie(row)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Movie{}
	}
	return out, nil
}

func (r *catalogRepo) ListBasicMovies(ctx context.Context, offset, limit int64) ([]domain.BasicMovie, error) {
	rows, err := r.q.Query(ctx,
		`SELECT movie_id, distribution_title, image_url FROM movie ORDER BY movie_id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, err
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BasicMovie, error) {
		var m domain.BasicMovie
		err := row.Scan(&m.ID, &m.DistributionTitle, &m.ImageURL)
		return m, err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.BasicMovie{}
	}
	return out, nil
}

func (r *catalogRepo) GetMovie(ctx context.Context, id int64) (domain.Movie, error) {
	m, err := scanMovie(r.q.QueryRow(ctx, selectMovie+` WHERE m.movie_id = $1`, id))
	if err != nil {
		return domain.Movie{}, mapNotFound(err)
	}
	return m, nil
}

func (r *catalogRepo) CreateMovie(ctx context.Context, m domain.MovieRecord) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO movie (
			distribution_title, original_title, original_language_id,
			has_spanish_subtitles, production_year, website_url, image_url,
			duration_hours, summary, classification_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING movie_id`,
		m.DistributionTitle, m.OriginalTitle, m.OriginalLanguageID,
		m.HasSpanishSubtitles, m.ProductionYear, m.WebsiteURL, m.ImageURL,
		m.DurationHours, m.Summary, m.ClassificationID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	if _, err := r.q.Exec(ctx,
		`INSERT INTO movie_genre (movie_id, genre_id) VALUES ($1, $2)`, id, m.GenreID,
	); err != nil {
		return 0, err
	}

	if _, err := r.q.Exec(ctx,
		`INSERT INTO movie_country (movie_id, country_id) VALUES ($1, $2)`, id, m.OriginCountryID,
	); err != nil {
		return 0, err
	}

	return id, nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var m domain.Movie
	err := row.Scan(
		&m.ID, &m.DistributionTitle, &m.OriginalTitle, &m.OriginalLanguage,
		&m.HasSpanishSubtitles, &m.ProductionYear, &m.WebsiteURL, &m.ImageURL,
		&m.DurationHours, &m.Summary, &m.Classification,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return m, nil
}
