package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageResponse[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Logs  []T   `json:"logs"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Page writes one page of a listing. A nil slice is sent as [].
func Page[T any](c *gin.Context, page, limit int, total int64, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  data,
	})
}
