package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UpdateConfigRequest 更新默认清洗选项的请求
// 指针字段允许部分更新：未出现的字段保持原值
type UpdateConfigRequest struct {
	GenerateAuditReport *bool `json:"generateAuditReport"`
	RemoveInvalidEmails *bool `json:"removeInvalidEmails"`
}

// GetConfig 获取默认清洗选项
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	opts, err := h.store.GetDefaultOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load configuration"})
		return
	}

	c.JSON(http.StatusOK, opts)
}

// UpdateConfig 更新默认清洗选项
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	opts, err := h.store.GetDefaultOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load configuration"})
		return
	}

	if req.GenerateAuditReport != nil {
		opts.GenerateAuditReport = *req.GenerateAuditReport
	}
	if req.RemoveInvalidEmails != nil {
		opts.RemoveInvalidEmails = *req.RemoveInvalidEmails
	}

	if err := h.store.SetDefaultOptions(opts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save configuration"})
		return
	}

	c.JSON(http.StatusOK, opts)
}
