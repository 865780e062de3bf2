package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/pkg/pagination"
)

func pageParams(page, perPage int) *pagination.PaginationParams {
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}

// activeOnly reads the ?active=true filter
func activeOnly(c *gin.Context) bool {
	return c.Query("active") == "true"
}
