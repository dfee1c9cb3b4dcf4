package adaptor

import (
	"fmt"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// GetGenreMovies handles GET /genres/{id}: the movies of the genre, not the genre.
func (h *GenreHandler) GetGenreMovies(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "get genre movies")
		return
	}

	movies, err := h.service.GetGenreMovies(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get genre movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// CreateGenre handles POST /genres
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[request.GenreRequest](w, r)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre")
		return
	}

	id, err := h.service.CreateGenre(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/genres/%d", id), "Genre created successfully")
}

// UpdateGenre handles PUT /genres/{id}
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "update genre")
		return
	}

	req, err := decodeJSON[request.GenreRequest](w, r)
	if err != nil {
		handleServiceError(w, h.log, err, "update genre")
		return
	}

	if err := h.service.UpdateGenre(r.Context(), id, req); err != nil {
		handleServiceError(w, h.log, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, "Genre updated successfully", nil)
}

// DeleteGenre handles DELETE /genres/{id}
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "delete genre")
		return
	}

	if err := h.service.DeleteGenre(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseDeleted(w, "Genre deleted successfully")
}
