package marqueesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CatalogHealth calls GET /v1/catalog/, which echoes the authenticated client.
func (s *Session) CatalogHealth(ctx context.Context) (*CatalogHealthResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/catalog/", nil, nil)
	if err != nil {
		return nil, err
	}

	var out CatalogHealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLookups lists every value of kind ("genre", "country", "language" or
// "classification").
func (s *Session) ListLookups(ctx context.Context, kind string) ([]Lookup, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/catalog/"+url.PathEscape(kind), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Lookup
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetLookup(ctx context.Context, kind string, id int64) (*Lookup, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/catalog/%s/%d", url.PathEscape(kind), id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Lookup
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateLookup(ctx context.Context, kind, name string) (*Lookup, error) {
	body, headers, err := jsonBody(CreateLookupRequest{Name: name})
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/catalog/"+url.PathEscape(kind), body, headers)
	if err != nil {
		return nil, err
	}

	var out Lookup
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoviePage returns page number page (from 0) of quantity full movies.
func (s *Session) MoviePage(ctx context.Context, page, quantity int64) ([]Movie, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/catalog/movie/page/%d/%d", page, quantity), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Movie
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// BasicMoviePage is MoviePage with the card view.
func (s *Session) BasicMoviePage(ctx context.Context, page, quantity int64) ([]BasicMovie, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/catalog/basic_data_movie/page/%d/%d", page, quantity), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []BasicMovie
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/catalog/movie/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Movie
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error) {
	body, headers, err := jsonBody(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/catalog/movie", body, headers)
	if err != nil {
		return nil, err
	}

	var out Movie
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
