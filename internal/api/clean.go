package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hbdrevv/RinseList/internal/model"
	"github.com/hbdrevv/RinseList/internal/pipeline"
)

// POST /api/clean 的 multipart 文件字段名
const (
	contactField     = "contactFile"
	suppressionField = "suppressionFile"
)

// 下载产物的文件名
const (
	archiveDownloadName = "rinselist_results.zip"
	cleanedDownloadName = "cleaned_list.csv"
	auditDownloadName   = "removal_audit.csv"
)

// CleanResult done 事件发给前端的载荷
type CleanResult struct {
	RunID                        string      `json:"runId"`
	Stats                        model.Stats `json:"stats"`
	ContactHasMultipleSheets     bool        `json:"contactHasMultipleSheets"`
	SuppressionHasMultipleSheets bool        `json:"suppressionHasMultipleSheets"`
	ArchiveURL                   string      `json:"archiveUrl"`
	CleanedListURL               string      `json:"cleanedListUrl"`
	AuditReportURL               string      `json:"auditReportUrl,omitempty"`
}

// Clean 执行清洗 (SSE 流式响应)
// POST /api/clean
func (h *Handler) Clean(c *gin.Context) {
	maxBytes := h.cfg.MaxUploadBytes()

	contact, err := readUploadedFile(c, contactField, maxBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suppression, err := readUploadedFile(c, suppressionField, maxBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 处理开关：表单未提交的项取存储的默认值
	opts, err := h.store.GetDefaultOptions()
	if err != nil {
		opts = model.CleanOptions{GenerateAuditReport: true}
	}
	if v, ok := c.GetPostForm("generateAuditReport"); ok {
		opts.GenerateAuditReport = v == "true"
	}
	if v, ok := c.GetPostForm("removeInvalidEmails"); ok {
		opts.RemoveInvalidEmails = v == "true"
	}

	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming is not supported"})
		return
	}

	job := pipeline.NewJob(contact, suppression, opts)
	startedAt := time.Now()
	if err := h.store.CreateRun(job.ID, contact.Name, suppression.Name, opts); err != nil {
		log.Printf("记录运行失败: %v", err)
	}

	progressChan := h.coordinator.Run(job)

	// 流式发送进度事件；done/error 事件在转发前补齐下载链接并落运行记录
	for event := range progressChan {
		switch event.Type {
		case "done":
			if payload, ok := event.Data.(*model.SuccessPayload); ok {
				event.Data = h.finishRun(job, payload, startedAt)
			}
		case "error":
			if failure, ok := event.Data.(*model.FailurePayload); ok {
				h.recordFailure(job.ID, failure, startedAt)
			}
		}
		writeSSE(c.Writer, flusher, event)
	}
}

// finishRun 登记下载产物并更新运行记录，返回发给前端的结果
func (h *Handler) finishRun(job pipeline.Job, payload *model.SuccessPayload, startedAt time.Time) *CleanResult {
	ttl := h.cfg.DownloadTTL()

	result := &CleanResult{
		RunID:                        job.ID,
		Stats:                        payload.Stats,
		ContactHasMultipleSheets:     payload.ContactHasMultipleSheets,
		SuppressionHasMultipleSheets: payload.SuppressionHasMultipleSheets,
	}

	token := h.downloads.put(archiveDownloadName, "application/zip", payload.ArchiveBytes, ttl)
	result.ArchiveURL = downloadPath(token)

	token = h.downloads.put(cleanedDownloadName, "text/csv; charset=utf-8", payload.CleanedListBytes, ttl)
	result.CleanedListURL = downloadPath(token)

	if len(payload.AuditReportBytes) > 0 {
		token = h.downloads.put(auditDownloadName, "text/csv; charset=utf-8", payload.AuditReportBytes, ttl)
		result.AuditReportURL = downloadPath(token)
	}

	if err := h.store.CompleteRun(job.ID, payload.Stats,
		payload.ContactHasMultipleSheets, payload.SuppressionHasMultipleSheets, time.Since(startedAt)); err != nil {
		log.Printf("更新运行记录失败: %v", err)
	}
	return result
}

// recordFailure 以失败状态落运行记录
func (h *Handler) recordFailure(runID string, failure *model.FailurePayload, startedAt time.Time) {
	if err := h.store.FailRun(runID, failure.Message, time.Since(startedAt)); err != nil {
		log.Printf("更新运行记录失败: %v", err)
	}
}

func downloadPath(token string) string {
	return "/api/clean/download/" + token
}

// writeSSE 以 SSE 格式写出事件: data: {json}\n\n
func writeSSE(w io.Writer, flusher http.Flusher, event pipeline.ProgressEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

// readUploadedFile 把 multipart 文件字段整体读入内存。
// 上传内容不经过磁盘；超过大小上限直接拒绝。
func readUploadedFile(c *gin.Context, field string, maxBytes int64) (model.RawFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return model.RawFile{}, fmt.Errorf("missing file field %q", field)
	}
	if fh.Size > maxBytes {
		return model.RawFile{}, fmt.Errorf("file %q exceeds the %d MB upload limit", fh.Filename, maxBytes>>20)
	}

	f, err := fh.Open()
	if err != nil {
		return model.RawFile{}, fmt.Errorf("failed to open upload %q", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return model.RawFile{}, fmt.Errorf("failed to read upload %q", fh.Filename)
	}
	if int64(len(data)) > maxBytes {
		return model.RawFile{}, fmt.Errorf("file %q exceeds the %d MB upload limit", fh.Filename, maxBytes>>20)
	}

	return model.RawFile{Name: fh.Filename, Data: data}, nil
}
