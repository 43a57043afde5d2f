package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
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
		kind.IDColumn(), kind.NameColumn(), kind.Table(), kind.IDColumn())

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Lookup{}
	for rows.Next() {
		l := domain.Lookup{Kind: kind}
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *catalogRepo) GetLookup(ctx context.Context, kind domain.LookupKind, id int64) (domain.Lookup, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ?`,
		kind.IDColumn(), kind.NameColumn(), kind.Table(), kind.IDColumn())

	l := domain.Lookup{Kind: kind}
	if err := r.q.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name); err != nil {
		return domain.Lookup{}, mapNotFound(err)
	}
	return l, nil
}

func (r *catalogRepo) LookupIDByName(ctx context.Context, kind domain.LookupKind, name string) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		kind.IDColumn(), kind.Table(), kind.NameColumn())

	var id int64
	if err := r.q.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		return 0, mapNotFound(err)
	}
	return id, nil
}

func (r *catalogRepo) CreateLookup(ctx context.Context, kind domain.LookupKind, name string) (domain.Lookup, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?) RETURNING %s`,
		kind.Table(), kind.NameColumn(), kind.IDColumn())

	l := domain.Lookup{Kind: kind, Name: name}
	if err := r.q.QueryRowContext(ctx, query, name).Scan(&l.ID); err != nil {
		return domain.Lookup{}, mapConstraint(err)
	}
	return l, nil
}

func (r *catalogRepo) ListMovies(ctx context.Context, offset, limit int64) ([]domain.Movie, error) {
	rows, err := r.q.QueryContext(ctx, selectMovie+` ORDER BY m.movie_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *catalogRepo) ListBasicMovies(ctx context.Context, offset, limit int64) ([]domain.BasicMovie, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT movie_id, distribution_title, image_url FROM movie ORDER BY movie_id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.BasicMovie{}
	for rows.Next() {
		var m domain.BasicMovie
		if err := rows.Scan(&m.ID, &m.DistributionTitle, &m.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *catalogRepo) GetMovie(ctx context.Context, id int64) (domain.Movie, error) {
	m, err := scanMovie(r.q.QueryRowContext(ctx, selectMovie+` WHERE m.movie_id = ?`, id))
	if err != nil {
		return domain.Movie{}, mapNotFound(err)
	}
	return m, nil
}

func (r *catalogRepo) CreateMovie(ctx context.Context, m domain.MovieRecord) (int64, error) {
	var id int64
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO movie (
			distribution_title, original_title, original_language_id,
			has_spanish_subtitles, production_year, website_url, image_url,
			duration_hours, summary, classification_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING movie_id`,
		m.DistributionTitle, m.OriginalTitle, m.OriginalLanguageID,
		m.HasSpanishSubtitles, m.ProductionYear, m.WebsiteURL, m.ImageURL,
		m.DurationHours, mapOptionalString(m.Summary), m.ClassificationID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	if _, err := r.q.ExecContext(ctx,
		`INSERT INTO movie_genre (movie_id, genre_id) VALUES (?, ?)`, id, m.GenreID,
	); err != nil {
		return 0, err
	}

	if _, err := r.q.ExecContext(ctx,
		`INSERT INTO movie_country (movie_id, country_id) VALUES (?, ?)`, id, m.OriginCountryID,
	); err != nil {
		return 0, err
	}

	return id, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovie(s scanner) (domain.Movie, error) {
	var (
		m       domain.Movie
		summary sql.NullString
	)
	err := s.Scan(
		&m.ID, &m.DistributionTitle, &m.OriginalTitle, &m.OriginalLanguage,
		&m.HasSpanishSubtitles, &m.ProductionYear, &m.WebsiteURL, &m.ImageURL,
		&m.DurationHours, &summary, &m.Classification,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	m.Summary = mapNullString(summary)
	return m, nil
}
