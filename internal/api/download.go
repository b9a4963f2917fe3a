package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Download 下载清洗产物（一次性，过期失效）
// GET /api/clean/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing download token"})
		return
	}

	item, ok := h.downloads.take(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link has expired"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.fileName))
	c.Data(http.StatusOK, item.contentType, item.data)
}
