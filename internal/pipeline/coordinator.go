package pipeline

import "time"

// Coordinator 清洗协调器：把同步流水线包进独立 goroutine，
// 通过进度通道与调用方通信
type Coordinator struct{}

// NewCoordinator 创建清洗协调器
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`    // start/stage/done/error
	Message   string      `json:"message"` // 事件消息
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Run 启动一次清洗，立即返回进度通道。
// 调用方永不阻塞：事件经带缓冲通道投递，任务结束（成功或失败）后通道关闭。
// done 事件的 Data 是 *model.SuccessPayload，error 事件的 Data 是 *model.FailurePayload。
func (c *Coordinator) Run(job Job) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doRun(job, progressChan)
	}()

	return progressChan
}

// doRun 执行清洗并逐阶段上报
func (c *Coordinator) doRun(job Job, ch chan ProgressEvent) {
	c.send(ch, ProgressEvent{
		Type:    "start",
		Message: "Processing started",
		Data: map[string]string{
			"runId":           job.ID,
			"contactFile":     job.ContactFile.Name,
			"suppressionFile": job.SuppressionFile.Name,
		},
		Timestamp: time.Now(),
	})

	outcome := run(job, func(stage, message string) {
		c.send(ch, ProgressEvent{
			Type:      "stage",
			Message:   message,
			Data:      map[string]string{"stage": stage},
			Timestamp: time.Now(),
		})
	})

	if outcome.Failed() {
		c.send(ch, ProgressEvent{
			Type:      "error",
			Message:   outcome.Failure.Message,
			Data:      outcome.Failure,
			Timestamp: time.Now(),
		})
		return
	}

	c.send(ch, ProgressEvent{
		Type:      "done",
		Message:   "Cleaning complete",
		Data:      outcome.Success,
		Timestamp: time.Now(),
	})
}

// send 发送进度事件
func (c *Coordinator) send(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}
