package adaptor

import (
	"fmt"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies?director_id=&genre_id=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var listQuery request.MovieListQuery
	errs := map[string]string{}

	directorID, err := utils.ParseOptionalID(query.Get("director_id"))
	if err != nil {
		errs["director_id"] = err.Error()
	}
	listQuery.DirectorID = directorID

	genreID, err := utils.ParseOptionalID(query.Get("genre_id"))
	if err != nil {
		errs["genre_id"] = err.Error()
	}
	listQuery.GenreID = genreID

	if len(errs) > 0 {
		h.log.Warn("Invalid movie filters", zap.Any("errors", errs))
		utils.ResponseBadRequest(w, "Invalid query parameters", errs)
		return
	}

	movies, err := h.service.GetMovies(r.Context(), listQuery)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /movies. The response carries no entity, only
// a message and the Location of the new movie.
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[request.MovieRequest](w, r)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	id, err := h.service.CreateMovie(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/movies/%d", id), "Movie created successfully")
}

// UpdateMovie handles PUT /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	req, err := decodeJSON[request.MovieRequest](w, r)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	if err := h.service.UpdateMovie(r.Context(), id, req); err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", nil)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseDeleted(w, "Movie deleted successfully")
}
