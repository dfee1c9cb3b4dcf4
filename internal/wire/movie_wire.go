package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)           // GET /movies?director_id=&genre_id=
		r.Post("/", movieHandler.CreateMovie)        // POST /movies
		r.Get(itemPath, movieHandler.GetMovieByID)   // GET /movies/{id}
		r.Put(itemPath, movieHandler.UpdateMovie)    // PUT /movies/{id}
		r.Delete(itemPath, movieHandler.DeleteMovie) // DELETE /movies/{id}
	})
}
