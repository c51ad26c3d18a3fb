package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Store 共享连接池的访问入口，注入到各个 service
// 每次访问都带超时，连接池耗尽或客户端断开时不会无限等待
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewStore 创建 Store，timeout <= 0 表示只使用调用方的 ctx
func NewStore(db *gorm.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

func (s *Store) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if s.timeout <= 0 {
		return s.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	return s.db.WithContext(ctx), cancel
}

// Ping 检查数据库是否可用
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return NewStoreError("get pool", err)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeoutOr(2*time.Second))
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return NewStoreError("ping", err)
	}
	return nil
}

func (s *Store) timeoutOr(d time.Duration) time.Duration {
	if s.timeout > 0 {
		return s.timeout
	}
	return d
}
