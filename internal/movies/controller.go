package movies

import (
	"errors"
	"net/http"
	"strconv"

	"cinegold/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalog Catalog
}

func NewController(catalog Catalog) *Controller {
	return &Controller{catalog: catalog}
}

// ListMovies handles GET /movies with optional genre/language/trending filters
func (ctrl *Controller) ListMovies(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	movies := ctrl.catalog.List(query)
	response.RespondJSON(c, "success", http.StatusOK, "Movies retrieved successfully", gin.H{
		"movies": movies,
		"count":  len(movies),
	}, nil)
}

// GetMovie handles GET /movies/:id
func (ctrl *Controller) GetMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid movie ID", nil, err.Error())
		return
	}

	movie, err := ctrl.catalog.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Movie not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to retrieve movie", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Movie retrieved successfully", movie, nil)
}

// GetFilters handles GET /movies/filters, the genre/language lists the
// browse page builds its dropdowns from
func (ctrl *Controller) GetFilters(c *gin.Context) {
	response.RespondJSON(c, "success", http.StatusOK, "Filters retrieved successfully", gin.H{
		"genres":    ctrl.catalog.Genres(),
		"languages": ctrl.catalog.Languages(),
	}, nil)
}
