package service

import (
	"context"

	"taxcalc/models"
)

// IncomeService 收入记录
type IncomeService struct {
	store *Store
}

func NewIncomeService(store *Store) *IncomeService {
	return &IncomeService{store: store}
}

// Create 只校验 user_id，不检查用户是否存在；未提供的金额字段写入 NULL
func (s *IncomeService) Create(ctx context.Context, in *models.Income) error {
	if in.UserID == 0 {
		return NewValidationError(MsgUserIDRequired)
	}
	db, cancel := s.store.conn(ctx)
	defer cancel()

	if err := db.Create(in).Error; err != nil {
		return NewStoreError("insert income", err)
	}
	return nil
}

func (s *IncomeService) List(ctx context.Context) ([]models.Income, error) {
	db, cancel := s.store.conn(ctx)
	defer cancel()

	list := make([]models.Income, 0)
	if err := db.Find(&list).Error; err != nil {
		return nil, NewStoreError("list income", err)
	}
	return list, nil
}

// DeductionService 减免记录
type DeductionService struct {
	store *Store
}

func NewDeductionService(store *Store) *DeductionService {
	return &DeductionService{store: store}
}

// Create 校验规则与收入记录相同
func (s *DeductionService) Create(ctx context.Context, in *models.Deduction) error {
	if in.UserID == 0 {
		return NewValidationError(MsgUserIDRequired)
	}
	db, cancel := s.store.conn(ctx)
	defer cancel()

	if err := db.Create(in).Error; err != nil {
		return NewStoreError("insert deduction", err)
	}
	return nil
}

func (s *DeductionService) List(ctx context.Context) ([]models.Deduction, error) {
	db, cancel := s.store.conn(ctx)
	defer cancel()

	list := make([]models.Deduction, 0)
	if err := db.Find(&list).Error; err != nil {
		return nil, NewStoreError("list deduction", err)
	}
	return list, nil
}
