package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// itemPath only matches numeric ids; anything else falls through to 404.
const itemPath = "/{id:[0-9]+}"

func wireDirector(r chi.Router, directorHandler *adaptor.DirectorHandler) {
	r.Route("/directors", func(r chi.Router) {
		r.Get("/", directorHandler.GetDirectors)
		r.Post("/", directorHandler.CreateDirector)
		r.Get(itemPath, directorHandler.GetDirectorByID)
		r.Put(itemPath, directorHandler.UpdateDirector)
		r.Delete(itemPath, directorHandler.DeleteDirector)
	})
}
