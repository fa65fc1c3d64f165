package router

import (
	"movie_catalog/constants"
	"movie_catalog/handler"
	"movie_catalog/validate"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the catalog endpoints under basePath.
func SetupRoutes(app *fiber.App, h *handler.Handler, basePath string, mw ...fiber.Handler) {
	api := app.Group(basePath, mw...)

	api.Get("/health", h.Health)

	directorId := validate.GetById("directorId", constants.LOCALS_DIRECTOR_ID)
	movieId := validate.GetById("movieId", constants.LOCALS_MOVIE_ID)

	director := api.Group("/director")
	director.Get("/", validate.ListQuery(), h.GetDirectors)
	director.Get("/search/:name", validate.SearchQuery(), h.SearchDirectors)
	director.Get("/:directorId", directorId, h.GetDirectorById)
	director.Post("/", validate.DirectorBody(), h.CreateDirector)
	director.Put("/:directorId", directorId, validate.DirectorBody(), h.UpdateDirector)
	director.Delete("/:directorId", directorId, h.DeleteDirector)

	director.Get("/:directorId/movie/:movieId", directorId, movieId, h.GetMovieById)
	director.Post("/:directorId/movie", directorId, validate.MovieBody(), h.CreateMovie)
	director.Put("/:directorId/movie/:movieId", directorId, movieId, validate.MovieBody(), h.UpdateMovie)
	director.Delete("/:directorId/movie/:movieId", directorId, movieId, h.DeleteMovie)

	movie := api.Group("/movie")
	movie.Get("/", validate.ListQuery(), h.GetMovies)
	movie.Get("/search/:title", validate.SearchQuery(), h.SearchMovies)
}
