package service

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return NewStore(gormDB, 0), mock
}

// bcryptArg 断言写入数据库的是明文密码的 bcrypt 哈希
type bcryptArg struct {
	plain string
}

func (a bcryptArg) Match(v driver.Value) bool {
	hash, ok := v.(string)
	if !ok || hash == a.plain {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(a.plain)) == nil
}

func TestStore_Ping(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectPing()

	require.NoError(t, store.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
