package api

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// downloadArtifact 一次性下载产物。
// 字节只驻留内存，取走或过期后即释放，从不写盘。
type downloadArtifact struct {
	fileName    string
	contentType string
	data        []byte
	expiresAt   time.Time
}

type downloadStore struct {
	mu    sync.Mutex
	items map[string]downloadArtifact
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]downloadArtifact),
	}
}

func (s *downloadStore) put(fileName, contentType string, data []byte, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = newRandomToken(24)
	s.items[token] = downloadArtifact{
		fileName:    fileName,
		contentType: contentType,
		data:        data,
		expiresAt:   time.Now().Add(ttl),
	}
	return token
}

// take 取出并删除产物（下载一次即失效）
func (s *downloadStore) take(token string) (downloadArtifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return downloadArtifact{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return downloadArtifact{}, false
	}
	delete(s.items, token)
	return v, true
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
