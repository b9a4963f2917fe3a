package store

import (
	"database/sql"
	"fmt"

	"github.com/hbdrevv/RinseList/internal/model"
)

// 处理默认选项的配置键
const (
	configKeyGenerateAuditReport = "generate_audit_report"
	configKeyRemoveInvalidEmails = "remove_invalid_emails"
)

// GetConfig 获取配置项
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("config key not found: %s", key)
		}
		return "", err
	}
	return value, nil
}

// GetConfigBool 获取布尔配置项（存储为 "1"/"0"）
func (s *Store) GetConfigBool(key string) (bool, error) {
	value, err := s.GetConfig(key)
	if err != nil {
		return false, err
	}
	return value == "1", nil
}

// SetConfig 设置配置项
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// SetConfigBool 设置布尔配置项
func (s *Store) SetConfigBool(key string, value bool) error {
	v := "0"
	if value {
		v = "1"
	}
	return s.SetConfig(key, v)
}

// GetDefaultOptions 读取处理默认选项（前端新任务的初始开关）
func (s *Store) GetDefaultOptions() (model.CleanOptions, error) {
	genAudit, err := s.GetConfigBool(configKeyGenerateAuditReport)
	if err != nil {
		return model.CleanOptions{}, fmt.Errorf("failed to get %s: %w", configKeyGenerateAuditReport, err)
	}

	removeInvalid, err := s.GetConfigBool(configKeyRemoveInvalidEmails)
	if err != nil {
		return model.CleanOptions{}, fmt.Errorf("failed to get %s: %w", configKeyRemoveInvalidEmails, err)
	}

	return model.CleanOptions{
		GenerateAuditReport: genAudit,
		RemoveInvalidEmails: removeInvalid,
	}, nil
}

// SetDefaultOptions 更新处理默认选项
func (s *Store) SetDefaultOptions(opts model.CleanOptions) error {
	if err := s.SetConfigBool(configKeyGenerateAuditReport, opts.GenerateAuditReport); err != nil {
		return err
	}
	if err := s.SetConfigBool(configKeyRemoveInvalidEmails, opts.RemoveInvalidEmails); err != nil {
		return err
	}
	return nil
}
