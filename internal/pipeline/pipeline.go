package pipeline

import (
	"bytes"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/hbdrevv/RinseList/internal/exporter"
	"github.com/hbdrevv/RinseList/internal/matcher"
	"github.com/hbdrevv/RinseList/internal/model"
	"github.com/hbdrevv/RinseList/internal/parser"
)

// Job 一次清洗运行的全部输入。
// 输入缓冲的所有权随任务转移：同一个 Job 只使用一次，运行之间不共享任何状态。
type Job struct {
	ID              string
	ContactFile     model.RawFile
	SuppressionFile model.RawFile
	Options         model.CleanOptions
}

// NewJob 创建清洗任务并分配运行 ID
func NewJob(contact, suppression model.RawFile, opts model.CleanOptions) Job {
	return Job{
		ID:              uuid.New().String(),
		ContactFile:     contact,
		SuppressionFile: suppression,
		Options:         opts,
	}
}

// 失败文案前缀：标记错误出自哪个输入文件
const (
	contactLabel     = "Contact List: "
	suppressionLabel = "Suppression List: "
)

// notify 阶段进度回调，nil 表示调用方不关心进度
type notify func(stage, message string)

// Execute 同步执行完整清洗流水线，返回成功或失败的结果。
// 这是不产生进度事件的直调路径；异步运行走 Coordinator.Run。
func Execute(job Job) *model.Outcome {
	return run(job, nil)
}

// run 流水线主体：同文件短路 → 解析×2 → 匹配 → 序列化 → 审计 → 打包。
// 任一阶段的意外 panic 都被回收为通用失败，绝不击穿调用方；
// 失败时丢弃全部中间产物，只返回失败信息。
func run(job Job, report notify) (out *model.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pipeline run %s panicked: %v", job.ID, r)
			out = failure(model.ErrorKindInternal, "Something went wrong while processing the files. Please try again.")
		}
	}()

	emit := func(stage, message string) {
		if report != nil {
			report(stage, message)
		}
	}

	// 字节完全一致的两份输入直接失败，不进解析：
	// 同一份文件既当联系人表又当抑制表只会得到一份令人费解的空结果
	if bytes.Equal(job.ContactFile.Data, job.SuppressionFile.Data) {
		return failure(model.ErrorKindSameFile, "Contact list and suppression list are the same file.")
	}

	emit("parse_contact", "Reading the contact list")
	contact, perr := parser.Parse(job.ContactFile.Data, job.ContactFile.Name)
	if perr != nil {
		return failure(perr.Kind, contactLabel+perr.Message)
	}

	emit("parse_suppression", "Reading the suppression list")
	suppression, perr := parser.Parse(job.SuppressionFile.Data, job.SuppressionFile.Name)
	if perr != nil {
		return failure(perr.Kind, suppressionLabel+perr.Message)
	}

	emit("match", "Matching against the suppression list")
	res := matcher.Match(contact, suppression, job.Options)

	emit("bundle", "Building the download files")
	cleaned, err := exporter.MarshalTable(contact.Headers, res.CleanedRows)
	if err != nil {
		return failure(model.ErrorKindInternal, fmt.Sprintf("Failed to build the cleaned list: %v", err))
	}
	cleaned = exporter.WithBOM(cleaned)

	var audit []byte
	if job.Options.GenerateAuditReport && len(res.RemovedRows) > 0 {
		audit, err = exporter.BuildAuditReport(res.RemovedRows)
		if err != nil {
			return failure(model.ErrorKindInternal, fmt.Sprintf("Failed to build the audit report: %v", err))
		}
		audit = exporter.WithBOM(audit)
	}

	archive, err := exporter.BuildArchive(cleaned, audit)
	if err != nil {
		return failure(model.ErrorKindInternal, fmt.Sprintf("Failed to build the download archive: %v", err))
	}

	return &model.Outcome{Success: &model.SuccessPayload{
		ArchiveBytes:                 archive,
		CleanedListBytes:             cleaned,
		AuditReportBytes:             audit,
		Stats:                        res.Stats,
		ContactHasMultipleSheets:     contact.HasMultipleSheets,
		SuppressionHasMultipleSheets: suppression.HasMultipleSheets,
	}}
}

func failure(kind model.ErrorKind, msg string) *model.Outcome {
	return &model.Outcome{Failure: &model.FailurePayload{Kind: kind, Message: msg}}
}
