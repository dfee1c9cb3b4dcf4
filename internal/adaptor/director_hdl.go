package adaptor

import (
	"fmt"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type DirectorHandler struct {
	service usecase.DirectorService
	log     *zap.Logger
}

func NewDirectorHandler(service usecase.DirectorService, log *zap.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		log:     log.With(zap.String("handler", "director")),
	}
}

// GetDirectors handles GET /directors
func (h *DirectorHandler) GetDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := h.service.GetDirectors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get directors")
		return
	}

	utils.ResponseSuccess(w, "success", directors)
}

// GetDirectorByID handles GET /directors/{id}
func (h *DirectorHandler) GetDirectorByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "get director by ID")
		return
	}

	director, err := h.service.GetDirectorByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get director by ID")
		return
	}

	utils.ResponseSuccess(w, "success", director)
}

// CreateDirector handles POST /directors
func (h *DirectorHandler) CreateDirector(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[request.DirectorRequest](w, r)
	if err != nil {
		handleServiceError(w, h.log, err, "create director")
		return
	}

	id, err := h.service.CreateDirector(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create director")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/directors/%d", id), "Director created successfully")
}

// UpdateDirector handles PUT /directors/{id}
func (h *DirectorHandler) UpdateDirector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "update director")
		return
	}

	req, err := decodeJSON[request.DirectorRequest](w, r)
	if err != nil {
		handleServiceError(w, h.log, err, "update director")
		return
	}

	if err := h.service.UpdateDirector(r.Context(), id, req); err != nil {
		handleServiceError(w, h.log, err, "update director")
		return
	}

	utils.ResponseSuccess(w, "Director updated successfully", nil)
}

// DeleteDirector handles DELETE /directors/{id}
func (h *DirectorHandler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleServiceError(w, h.log, err, "delete director")
		return
	}

	if err := h.service.DeleteDirector(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete director")
		return
	}

	utils.ResponseDeleted(w, "Director deleted successfully")
}
