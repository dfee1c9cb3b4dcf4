package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) GetMovies(ctx context.Context, query request.MovieListQuery) ([]response.MovieResponse, error) {
	args := m.Called(ctx, query)
	movies, _ := args.Get(0).([]response.MovieResponse)
	return movies, args.Error(1)
}

func (m *mockMovieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*response.MovieResponse)
	return movie, args.Error(1)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDirectorService struct {
	mock.Mock
}

func (m *mockDirectorService) GetDirectors(ctx context.Context) ([]response.DirectorResponse, error) {
	args := m.Called(ctx)
	directors, _ := args.Get(0).([]response.DirectorResponse)
	return directors, args.Error(1)
}

func (m *mockDirectorService) GetDirectorByID(ctx context.Context, id int64) (*response.DirectorResponse, error) {
	args := m.Called(ctx, id)
	director, _ := args.Get(0).(*response.DirectorResponse)
	return director, args.Error(1)
}

func (m *mockDirectorService) CreateDirector(ctx context.Context, req *request.DirectorRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDirectorService) UpdateDirector(ctx context.Context, id int64, req *request.DirectorRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *mockDirectorService) DeleteDirector(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockGenreService struct {
	mock.Mock
}

func (m *mockGenreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]response.GenreResponse)
	return genres, args.Error(1)
}

func (m *mockGenreService) GetGenreMovies(ctx context.Context, id int64) ([]response.MovieResponse, error) {
	args := m.Called(ctx, id)
	movies, _ := args.Get(0).([]response.MovieResponse)
	return movies, args.Error(1)
}

func (m *mockGenreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGenreService) UpdateGenre(ctx context.Context, id int64, req *request.GenreRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *mockGenreService) DeleteGenre(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// envelope mirrors utils.Response with raw payloads so tests can decode data
// into the concrete type they expect.
type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

// newTestRouter mounts the handlers on the same paths the server uses.
func newTestRouter(movie *MovieHandler, director *DirectorHandler, genre *GenreHandler) *chi.Mux {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Resource not found")
	})

	const item = "/{id:[0-9]+}"
	if movie != nil {
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", movie.GetMovies)
			r.Post("/", movie.CreateMovie)
			r.Get(item, movie.GetMovieByID)
			r.Put(item, movie.UpdateMovie)
			r.Delete(item, movie.DeleteMovie)
		})
	}
	if director != nil {
		r.Route("/directors", func(r chi.Router) {
			r.Get("/", director.GetDirectors)
			r.Post("/", director.CreateDirector)
			r.Get(item, director.GetDirectorByID)
			r.Put(item, director.UpdateDirector)
			r.Delete(item, director.DeleteDirector)
		})
	}
	if genre != nil {
		r.Route("/genres", func(r chi.Router) {
			r.Get("/", genre.GetGenres)
			r.Post("/", genre.CreateGenre)
			r.Get(item, genre.GetGenreMovies)
			r.Put(item, genre.UpdateGenre)
			r.Delete(item, genre.DeleteGenre)
		})
	}
	return r
}
