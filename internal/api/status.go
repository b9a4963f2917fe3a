package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Version       string `json:"version"`
	TotalRuns     int    `json:"totalRuns"`     // 历史运行总数
	SucceededRuns int    `json:"succeededRuns"` // 成功运行数
	LastRunTime   string `json:"lastRunTime"`   // 最近一次运行时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	total, succeeded, err := h.store.CountRuns()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Version: Version})
		return
	}

	lastRun := ""
	if runs, err := h.store.ListRuns(1); err == nil && len(runs) > 0 {
		lastRun = runs[0].CreatedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, StatusResponse{
		Version:       Version,
		TotalRuns:     total,
		SucceededRuns: succeeded,
		LastRunTime:   lastRun,
	})
}
