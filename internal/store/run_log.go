package store

import (
	"fmt"
	"time"

	"github.com/hbdrevv/RinseList/internal/model"
)

// Run 一次清洗运行的持久化记录（只含统计与元数据）
type Run struct {
	ID                    string             `json:"id"`
	ContactFilename       string             `json:"contactFilename"`
	SuppressionFilename   string             `json:"suppressionFilename"`
	Options               model.CleanOptions `json:"options"`
	Stats                 model.Stats        `json:"stats"`
	ContactMultiSheet     bool               `json:"contactMultiSheet"`
	SuppressionMultiSheet bool               `json:"suppressionMultiSheet"`
	Status                string             `json:"status"` // running/success/failure
	FailureMessage        string             `json:"failureMessage,omitempty"`
	DurationMS            int64              `json:"durationMs"`
	CreatedAt             time.Time          `json:"createdAt"`
}

// CreateRun 登记新的清洗运行
func (s *Store) CreateRun(id, contactName, suppressionName string, opts model.CleanOptions) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (id, contact_filename, suppression_filename, generate_audit_report, remove_invalid_emails, status)
		VALUES (?, ?, ?, ?, ?, 'running')
	`, id, contactName, suppressionName, boolToInt(opts.GenerateAuditReport), boolToInt(opts.RemoveInvalidEmails))
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// CompleteRun 以成功状态收尾运行记录
func (s *Store) CompleteRun(id string, stats model.Stats, contactMulti, suppressionMulti bool, duration time.Duration) error {
	_, err := s.db.Exec(`
		UPDATE runs SET
			total_rows = ?,
			cleaned_count = ?,
			suppressed_count = ?,
			invalid_count = ?,
			contact_multi_sheet = ?,
			suppression_multi_sheet = ?,
			status = 'success',
			duration_ms = ?
		WHERE id = ?
	`, stats.TotalRows, stats.CleanedCount, stats.SuppressedCount, stats.InvalidCount,
		boolToInt(contactMulti), boolToInt(suppressionMulti), duration.Milliseconds(), id)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun 以失败状态收尾运行记录
func (s *Store) FailRun(id, message string, duration time.Duration) error {
	_, err := s.db.Exec(`
		UPDATE runs SET
			status = 'failure',
			failure_message = ?,
			duration_ms = ?
		WHERE id = ?
	`, message, duration.Milliseconds(), id)
	if err != nil {
		return fmt.Errorf("failed to fail run: %w", err)
	}
	return nil
}

// ListRuns 按时间倒序列出最近的运行记录
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, contact_filename, suppression_filename,
			generate_audit_report, remove_invalid_emails,
			total_rows, cleaned_count, suppressed_count, invalid_count,
			contact_multi_sheet, suppression_multi_sheet,
			status, failure_message, duration_ms, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var genAudit, removeInvalid, contactMulti, suppressionMulti int
		if err := rows.Scan(
			&r.ID, &r.ContactFilename, &r.SuppressionFilename,
			&genAudit, &removeInvalid,
			&r.Stats.TotalRows, &r.Stats.CleanedCount, &r.Stats.SuppressedCount, &r.Stats.InvalidCount,
			&contactMulti, &suppressionMulti,
			&r.Status, &r.FailureMessage, &r.DurationMS, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Options.GenerateAuditReport = genAudit != 0
		r.Options.RemoveInvalidEmails = removeInvalid != 0
		r.ContactMultiSheet = contactMulti != 0
		r.SuppressionMultiSheet = suppressionMulti != 0
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// CountRuns 统计运行总数与成功数
func (s *Store) CountRuns() (total, succeeded int, err error) {
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("failed to count runs: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE status = 'success'").Scan(&succeeded); err != nil {
		return 0, 0, fmt.Errorf("failed to count succeeded runs: %w", err)
	}
	return total, succeeded, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
