package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetHistory 最近的清洗运行记录（按时间倒序）
// GET /api/history
func (h *Handler) GetHistory(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load run history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
