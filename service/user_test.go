package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{"id", "firstname", "lastname", "email", "password"}

func validInput() RegisterInput {
	return RegisterInput{
		Firstname:       "A",
		Lastname:        "B",
		Email:           "a@b.com",
		Password:        "x",
		ConfirmPassword: "x",
	}
}

func TestRegisterInput_Validate(t *testing.T) {
	in := validInput()
	require.NoError(t, in.Validate())

	in.ConfirmPassword = ""
	var ve *ValidationError
	require.ErrorAs(t, in.Validate(), &ve)
	assert.Equal(t, MsgMissingFields, ve.Message)

	// 缺字段优先于密码不一致
	in = validInput()
	in.Firstname = ""
	in.ConfirmPassword = "y"
	require.ErrorAs(t, in.Validate(), &ve)
	assert.Equal(t, MsgMissingFields, ve.Message)

	in = validInput()
	in.Password = "abc123"
	in.ConfirmPassword = "abc124"
	require.ErrorAs(t, in.Validate(), &ve)
	assert.Equal(t, MsgPasswordMismatch, ve.Message)
}

func TestUserService_Register(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{BcryptCost: bcrypt.MinCost})

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WithArgs("A", "B", "a@b.com", bcryptArg{plain: "x"}).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NotEqual(t, "x", user.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_LongPassword(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{BcryptCost: bcrypt.MinCost})

	long := strings.Repeat("p", 73)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	// 超过 72 字节的部分不参与哈希
	mock.ExpectExec("INSERT INTO `users`").
		WithArgs("A", "B", "a@b.com", bcryptArg{plain: long[:72]}).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	in := validInput()
	in.Password, in.ConfirmPassword = long, long
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_ValidationSkipsStore(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{})

	in := validInput()
	in.ConfirmPassword = "y"
	_, err := svc.Register(context.Background(), in)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_EmailExists(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{})

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "A", "B", "a@b.com", "hash"))

	_, err := svc.Register(context.Background(), validInput())
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, MsgEmailExists, ce.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_DuplicateKeyOnInsert(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{BcryptCost: bcrypt.MinCost})

	// 查询时邮箱尚不存在，插入时被并发请求抢先
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'users.email'"})
	mock.ExpectRollback()

	_, err := svc.Register(context.Background(), validInput())
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_StoreError(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{})

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@b.com").
		WillReturnError(errors.New("connection refused"))

	_, err := svc.Register(context.Background(), validInput())
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "check email", se.Op)
	require.NoError(t, mock.ExpectationsWereMet())
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func (n *recordingNotifier) SendWelcomeEmail(to, name string) error {
	n.mu.Lock()
	n.sent = append(n.sent, to+"|"+name)
	n.mu.Unlock()
	close(n.done)
	return nil
}

func TestUserService_Register_SendsWelcome(t *testing.T) {
	store, mock := setupMockStore(t)
	notifier := &recordingNotifier{done: make(chan struct{})}
	svc := NewUserService(store, zap.NewNop(), UserOptions{BcryptCost: bcrypt.MinCost, Notifier: notifier})

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	select {
	case <-notifier.done:
	case <-time.After(time.Second):
		t.Fatal("welcome email not sent")
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, []string{"a@b.com|A B"}, notifier.sent)
}

func TestUserService_List(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{HidePasswordHash: true})

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "A", "B", "a@b.com", "$2a$10$hash"))

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@b.com", users[0].Email)
	assert.Empty(t, users[0].Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_List_Empty(t *testing.T) {
	store, mock := setupMockStore(t)
	svc := NewUserService(store, zap.NewNop(), UserOptions{})

	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	require.NoError(t, mock.ExpectationsWereMet())
}
