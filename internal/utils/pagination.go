package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageFromQuery reads the 1-based "page" query parameter, defaulting to 1.
func PageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
