package http

import (
	"net/http"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
	"github.com/aussiebroadwan/marquee/internal/marquee/service"
	"github.com/aussiebroadwan/marquee/pkg/httpx"
	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

// CatalogHandler serves the gated catalog routes. Every handler runs behind
// the authentication gate, so an Identity is always in the context.
type CatalogHandler struct {
	CatalogService    *service.CatalogService
	CredentialService *service.CredentialService
}

// HandleHealth handles GET /v1/catalog/
//
//	@Summary		Catalog Health
//	@Description	Confirms the catalog is reachable and echoes the authenticated client.
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	marqueesdk.CatalogHealthResponse	"status, client_name, registered_at"
//	@Failure		401	"missing, malformed or rejected bearer token"
//	@Failure		404	{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/catalog/ [get].
func (h *CatalogHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		slogx.FromContext(ctx).Error("catalog route reached without identity")
		marqueesdk.ErrServerError.WriteError(w)
		return
	}

	client, err := h.CredentialService.Describe(ctx, id.Subject)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marqueesdk.CatalogHealthResponse{
		Status:       "ok",
		ClientName:   client.Name,
		RegisteredAt: client.CreatedAt.UTC(),
	})
}

// HandleListLookups handles GET /v1/catalog/{kind}
//
//	@Summary		List Lookup Values
//	@Description	Lists every genre, country, language or classification. Keys carry the kind, e.g. genre_id and genre_name.
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Param			kind	path		string	true	"genre, country, language or classification"
//	@Success		200		{array}		object	"[{<kind>_id, <kind>_name}]"
//	@Failure		401		"missing, malformed or rejected bearer token"
//	@Failure		404		{object}	marqueesdk.ErrorResponse	"unknown kind"
//	@Failure		503		{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/catalog/{kind} [get].
func (h *CatalogHandler) HandleListLookups(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseLookupKind(r.PathValue("kind"))
	if err != nil {
		marqueesdk.ErrUnknownKind.WriteError(w)
		return
	}

	lookups, err := h.CatalogService.ListLookups(r.Context(), kind)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]marqueesdk.Lookup, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, toLookup(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGetLookup handles GET /v1/catalog/{kind}/{id}
//
//	@Summary		Get Lookup Value
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Param			kind	path		string	true	"genre, country, language or classification"
//	@Param			id		path		int		true	"lookup id"
//	@Success		200		{object}	object	"{<kind>_id, <kind>_name}"
//	@Failure		400		{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Failure		401		"missing, malformed or rejected bearer token"
//	@Failure		404		{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/catalog/{kind}/{id} [get].
func (h *CatalogHandler) HandleGetLookup(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseLookupKind(r.PathValue("kind"))
	if err != nil {
		marqueesdk.ErrUnknownKind.WriteError(w)
		return
	}

	id, err := pathInt(r, "id")
	if err != nil {
		marqueesdk.ErrBadPathParam.WriteError(w)
		return
	}

	l, err := h.CatalogService.GetLookup(r.Context(), kind, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLookup(l))
}

// HandleCreateLookup handles POST /v1/catalog/{kind}
//
//	@Summary		Create Lookup Value
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			kind	path		string							true	"genre, country, language or classification"
//	@Param			request	body		marqueesdk.CreateLookupRequest	true	"name"
//	@Success		201		{object}	object							"{<kind>_id, <kind>_name}"
//	@Failure		400		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		401		"missing, malformed or rejected bearer token"
//	@Failure		404		{object}	marqueesdk.ErrorResponse	"unknown kind"
//	@Failure		409		{object}	marqueesdk.ErrorResponse	"name already exists"
//	@Router			/v1/catalog/{kind} [post].
func (h *CatalogHandler) HandleCreateLookup(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseLookupKind(r.PathValue("kind"))
	if err != nil {
		marqueesdk.ErrUnknownKind.WriteError(w)
		return
	}

	var req marqueesdk.CreateLookupRequest
	if err := decodeBody(w, r, &req); err != nil {
		marqueesdk.ErrMalformedBody.WriteError(w)
		return
	}

	l, err := h.CatalogService.CreateLookup(r.Context(), kind, service.NewLookup{Name: req.Name})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toLookup(l))
}

// HandleMoviePage handles GET /v1/catalog/movie/page/{page}/{quantity}
//
//	@Summary		Movie Page
//	@Description	Returns quantity movies starting at page*quantity, ordered by id.
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page		path		int					true	"page number, from 0"
//	@Param			quantity	path		int					true	"page size, 1 to 100"
//	@Success		200			{array}		marqueesdk.Movie	"movies"
//	@Failure		400			{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Failure		401			"missing, malformed or rejected bearer token"
//	@Router			/v1/catalog/movie/page/{page}/{quantity} [get].
func (h *CatalogHandler) HandleMoviePage(w http.ResponseWriter, r *http.Request) {
	page, quantity, ok := pageParams(w, r)
	if !ok {
		return
	}

	movies, err := h.CatalogService.MoviePage(r.Context(), page, quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]marqueesdk.Movie, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovie(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleBasicMoviePage handles GET /v1/catalog/basic_data_movie/page/{page}/{quantity}
//
//	@Summary		Basic Movie Page
//	@Description	Like the movie page, with only id, title and image.
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page		path		int						true	"page number, from 0"
//	@Param			quantity	path		int						true	"page size, 1 to 100"
//	@Success		200			{array}		marqueesdk.BasicMovie	"movies"
//	@Failure		400			{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Failure		401			"missing, malformed or rejected bearer token"
//	@Router			/v1/catalog/basic_data_movie/page/{page}/{quantity} [get].
func (h *CatalogHandler) HandleBasicMoviePage(w http.ResponseWriter, r *http.Request) {
	page, quantity, ok := pageParams(w, r)
	if !ok {
		return
	}

	movies, err := h.CatalogService.BasicMoviePage(r.Context(), page, quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]marqueesdk.BasicMovie, 0, len(movies))
	for _, m := range movies {
		out = append(out, marqueesdk.BasicMovie{
			ID:                m.ID,
			DistributionTitle: m.DistributionTitle,
			ImageURL:          m.ImageURL,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGetMovie handles GET /v1/catalog/movie/{id}
//
//	@Summary		Get Movie
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int							true	"movie id"
//	@Success		200	{object}	marqueesdk.Movie			"movie"
//	@Failure		400	{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Failure		401	"missing, malformed or rejected bearer token"
//	@Failure		404	{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/catalog/movie/{id} [get].
func (h *CatalogHandler) HandleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		marqueesdk.ErrBadPathParam.WriteError(w)
		return
	}

	m, err := h.CatalogService.GetMovie(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMovie(m))
}

// HandleCreateMovie handles POST /v1/catalog/movie
//
//	@Summary		Create Movie
//	@Description	Creates a movie. Language, country, genre and classification are given by name and must already exist.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		marqueesdk.CreateMovieRequest	true	"movie"
//	@Success		201		{object}	marqueesdk.Movie				"created movie"
//	@Failure		400		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		401		"missing, malformed or rejected bearer token"
//	@Failure		503		{object}	marqueesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/catalog/movie [post].
func (h *CatalogHandler) HandleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req marqueesdk.CreateMovieRequest
	if err := decodeBody(w, r, &req); err != nil {
		marqueesdk.ErrMalformedBody.WriteError(w)
		return
	}

	m, err := h.CatalogService.CreateMovie(r.Context(), service.NewMovie{
		DistributionTitle:   req.DistributionTitle,
		OriginalTitle:       req.OriginalTitle,
		OriginalLanguage:    req.OriginalLanguage,
		HasSpanishSubtitles: req.HasSpanishSubtitles,
		ProductionYear:      req.ProductionYear,
		WebsiteURL:          req.WebsiteURL,
		ImageURL:            req.ImageURL,
		DurationHours:       req.DurationHours,
		Summary:             req.Summary,
		Classification:      req.Classification,
		OriginCountry:       req.OriginCountry,
		Genre:               req.Genre,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMovie(m))
}

// pageParams parses {page} and {quantity}. Range checks are the service's.
func pageParams(w http.ResponseWriter, r *http.Request) (page, quantity int64, ok bool) {
	page, err := pathInt(r, "page")
	if err != nil {
		marqueesdk.ErrBadPathParam.WriteError(w)
		return 0, 0, false
	}
	quantity, err = pathInt(r, "quantity")
	if err != nil {
		marqueesdk.ErrBadPathParam.WriteError(w)
		return 0, 0, false
	}
	return page, quantity, true
}

func toLookup(l domain.Lookup) marqueesdk.Lookup {
	return marqueesdk.Lookup{Kind: string(l.Kind), ID: l.ID, Name: l.Name}
}

func toMovie(m domain.Movie) marqueesdk.Movie {
	return marqueesdk.Movie{
		ID:                  m.ID,
		DistributionTitle:   m.DistributionTitle,
		OriginalTitle:       m.OriginalTitle,
		OriginalLanguage:    m.OriginalLanguage,
		HasSpanishSubtitles: m.HasSpanishSubtitles,
		ProductionYear:      m.ProductionYear,
		WebsiteURL:          m.WebsiteURL,
		ImageURL:            m.ImageURL,
		DurationHours:       m.DurationHours,
		Summary:             m.Summary,
		Classification:      m.Classification,
	}
}
