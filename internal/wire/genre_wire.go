package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genreHandler.GetGenres)
		r.Post("/", genreHandler.CreateGenre)
		r.Get(itemPath, genreHandler.GetGenreMovies) // movies of the genre
		r.Put(itemPath, genreHandler.UpdateGenre)
		r.Delete(itemPath, genreHandler.DeleteGenre)
	})
}
