package service

import (
	"context"
	"strings"

	"taxcalc/models"
)

// HomepageService 首页聚合视图（只读）
type HomepageService struct {
	store *Store
}

func NewHomepageService(store *Store) *HomepageService {
	return &HomepageService{store: store}
}

// List 每个用户至少一行；一个用户有多条收入/减免记录时按 join 结果重复出现，不做聚合
func (s *HomepageService) List(ctx context.Context) ([]models.HomepageRow, error) {
	db, cancel := s.store.conn(ctx)
	defer cancel()

	rows := make([]models.HomepageRow, 0)
	err := db.Table("users u").
		Select(strings.Join(models.HomepageColumns, ", ")).
		Joins("LEFT JOIN income i ON u.id = i.user_id").
		Joins("LEFT JOIN deduction d ON u.id = d.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, NewStoreError("homepage", err)
	}
	return rows, nil
}
