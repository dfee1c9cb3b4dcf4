package adaptor

import (
	"net/http"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperror"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGenreRouter(t *testing.T) (http.Handler, *mockGenreService) {
	t.Helper()
	service := new(mockGenreService)
	t.Cleanup(func() { service.AssertExpectations(t) })
	return newTestRouter(nil, nil, NewGenreHandler(service, zap.NewNop())), service
}

func TestGenreHandler_GetGenres(t *testing.T) {
	router, service := newGenreRouter(t)
	service.On("GetGenres", mock.Anything).Return([]response.GenreResponse{{ID: 1, Name: "Drama"}}, nil)

	rec := serve(t, router, http.MethodGet, "/genres", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var genres []response.GenreResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &genres))
	assert.Equal(t, []response.GenreResponse{{ID: 1, Name: "Drama"}}, genres)
}

func TestGenreHandler_GetGenreMovies(t *testing.T) {
	t.Run("returns the movies of the genre", func(t *testing.T) {
		router, service := newGenreRouter(t)
		title := "Inception"
		genreID := int64(2)
		service.On("GetGenreMovies", mock.Anything, int64(2)).
			Return([]response.MovieResponse{{ID: 5, Title: &title, GenreID: &genreID}}, nil)

		rec := serve(t, router, http.MethodGet, "/genres/2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var movies []response.MovieResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &movies))
		require.Len(t, movies, 1)
		assert.Equal(t, "Inception", *movies[0].Title)
	})

	t.Run("genre without movies", func(t *testing.T) {
		router, service := newGenreRouter(t)
		service.On("GetGenreMovies", mock.Anything, int64(2)).Return([]response.MovieResponse{}, nil)

		rec := serve(t, router, http.MethodGet, "/genres/2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", string(decodeEnvelope(t, rec).Data))
	})

	t.Run("missing genre", func(t *testing.T) {
		router, service := newGenreRouter(t)
		service.On("GetGenreMovies", mock.Anything, int64(2)).Return(nil, apperror.NotFound("Sorry, no genre with this ID was found"))

		rec := serve(t, router, http.MethodGet, "/genres/2", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGenreHandler_CreateGenre(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, service := newGenreRouter(t)
		service.On("CreateGenre", mock.Anything, &request.GenreRequest{Name: "Sci-Fi"}).Return(int64(3), nil)

		rec := serve(t, router, http.MethodPost, "/genres", `{"name":"Sci-Fi"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/genres/3", rec.Header().Get("Location"))
	})

	t.Run("name must be a string", func(t *testing.T) {
		router, _ := newGenreRouter(t)

		rec := serve(t, router, http.MethodPost, "/genres", `{"name":42}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGenreHandler_UpdateGenre(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, service := newGenreRouter(t)
		service.On("UpdateGenre", mock.Anything, int64(3), &request.GenreRequest{Name: "Science Fiction"}).Return(nil)

		rec := serve(t, router, http.MethodPut, "/genres/3", `{"name":"Science Fiction"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Genre updated successfully", decodeEnvelope(t, rec).Message)
	})

	t.Run("missing", func(t *testing.T) {
		router, service := newGenreRouter(t)
		service.On("UpdateGenre", mock.Anything, int64(3), mock.Anything).Return(apperror.NotFound("Sorry, no genre with this ID was found"))

		rec := serve(t, router, http.MethodPut, "/genres/3", `{"name":"x"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGenreHandler_DeleteGenre(t *testing.T) {
	router, service := newGenreRouter(t)
	service.On("DeleteGenre", mock.Anything, int64(3)).Return(nil)

	rec := serve(t, router, http.MethodDelete, "/genres/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "Genre deleted successfully", rec.Header().Get("X-Message"))
}
