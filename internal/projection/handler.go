package projection

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	httperr "github.com/aevon-lab/traffic-dashboard/internal/core/errors"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/traffic/stats", s.HandleStats)
	r.GET("/traffic/series", s.HandleSeries)
}

// HandleStats handles GET /traffic/stats
// Query parameters: from, to
func (s *Service) HandleStats(c *gin.Context) {
	var query StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.New(httperr.CodeValidation, "Invalid query parameters"))
		return
	}

	data, err := s.Stats(c.Request.Context(), query)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.StatsResponse{Success: true, Data: *data})
}

// HandleSeries handles GET /traffic/series
// Query parameters: view, from, to
func (s *Service) HandleSeries(c *gin.Context) {
	var query SeriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.New(httperr.CodeValidation, "Invalid query parameters"))
		return
	}

	view, points, err := s.Series(c.Request.Context(), query)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.SeriesResponse{Success: true, View: string(view), Data: points})
}

func writeQueryError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, httperr.New(httperr.CodeValidation, err.Error()))
		return
	}

	slog.Error("[Projection] Query failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, httperr.New(httperr.CodeInternal, httperr.MsgInternal))
}
