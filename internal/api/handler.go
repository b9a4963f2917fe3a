package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hbdrevv/RinseList/internal/config"
	"github.com/hbdrevv/RinseList/internal/pipeline"
	"github.com/hbdrevv/RinseList/internal/store"
)

// Version 应用版本
const Version = "1.0.0"

// Handler API 处理器
type Handler struct {
	store       *store.Store
	coordinator *pipeline.Coordinator
	downloads   *downloadStore
	cfg         *config.AppConfig
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:       st,
		coordinator: pipeline.NewCoordinator(),
		downloads:   newDownloadStore(),
		cfg:         cfg,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 清洗流水线
	router.POST("/clean", h.Clean)
	router.GET("/clean/download/:token", h.Download)

	// 运行历史
	router.GET("/history", h.GetHistory)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)
}
