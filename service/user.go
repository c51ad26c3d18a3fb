package service

import (
	"context"
	"errors"

	"taxcalc/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// WelcomeNotifier 注册成功后的通知
type WelcomeNotifier interface {
	SendWelcomeEmail(toEmail, name string) error
}

// RegisterInput 注册信息
type RegisterInput struct {
	Firstname       string
	Lastname        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate 先检查必填字段，再检查两次密码是否一致
func (in RegisterInput) Validate() error {
	if in.Firstname == "" || in.Lastname == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return NewValidationError(MsgMissingFields)
	}
	if in.Password != in.ConfirmPassword {
		return NewValidationError(MsgPasswordMismatch)
	}
	return nil
}

// UserService 用户注册与查询
type UserService struct {
	store      *Store
	log        *zap.Logger
	bcryptCost int
	hideHash   bool
	notifier   WelcomeNotifier
}

// UserOptions UserService 可选参数
type UserOptions struct {
	BcryptCost       int
	HidePasswordHash bool
	Notifier         WelcomeNotifier
}

// NewUserService 创建用户服务
func NewUserService(store *Store, log *zap.Logger, opts UserOptions) *UserService {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{
		store:      store,
		log:        log,
		bcryptCost: cost,
		hideHash:   opts.HidePasswordHash,
		notifier:   opts.Notifier,
	}
}

// Register 注册用户，返回新建用户（Password 为哈希值）
// 邮箱唯一性先查询再插入；两个并发请求同时通过查询时由 users.email 唯一索引兜底
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	db, cancel := s.store.conn(ctx)
	defer cancel()

	var existing models.User
	err := db.Where("email = ?", in.Email).First(&existing).Error
	switch {
	case err == nil:
		return nil, NewConflictError(MsgEmailExists)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, NewStoreError("check email", err)
	}

	hashed, err := bcrypt.GenerateFromPassword(hashInput(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Email:     in.Email,
		Password:  string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		if IsDuplicateKey(err) {
			return nil, NewConflictError(MsgEmailExists)
		}
		return nil, NewStoreError("insert user", err)
	}

	s.welcome(user)
	return &user, nil
}

// List 返回全部用户；hideHash 时清空密码哈希
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	db, cancel := s.store.conn(ctx)
	defer cancel()

	users := make([]models.User, 0)
	if err := db.Find(&users).Error; err != nil {
		return nil, NewStoreError("list users", err)
	}
	if s.hideHash {
		for i := range users {
			users[i].Password = ""
		}
	}
	return users, nil
}

func (s *UserService) welcome(user models.User) {
	if s.notifier == nil {
		return
	}
	name := user.Firstname + " " + user.Lastname
	go func() {
		if err := s.notifier.SendWelcomeEmail(user.Email, name); err != nil {
			s.log.Warn("发送欢迎邮件失败", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}()
}

// bcrypt 只使用前 72 字节，超出部分截断而不是拒绝
const maxPasswordBytes = 72

func hashInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
