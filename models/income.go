package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// 金额以 JSON 数字输出，与前端约定一致
	decimal.MarshalJSONWithoutQuotes = true
}

// Income 收入记录模型，金额字段可为空（NULL）
type Income struct {
	ID               uint                `json:"id" gorm:"primaryKey"`
	UserID           uint                `json:"user_id" gorm:"index;not null"`
	Salary           decimal.NullDecimal `json:"salary" gorm:"type:decimal(15,2)"`
	Freelance        decimal.NullDecimal `json:"freelance" gorm:"type:decimal(15,2)"`
	Copyright        decimal.NullDecimal `json:"copyright" gorm:"type:decimal(15,2)"`
	InterestDividend decimal.NullDecimal `json:"interest_dividend" gorm:"type:decimal(15,2)"`
	Rent             decimal.NullDecimal `json:"rent" gorm:"type:decimal(15,2)"`
	Profession       decimal.NullDecimal `json:"profession" gorm:"type:decimal(15,2)"`
	Contractor       decimal.NullDecimal `json:"contractor" gorm:"type:decimal(15,2)"`
	SellProducts     decimal.NullDecimal `json:"sell_products" gorm:"type:decimal(15,2)"`
	SumIncome        decimal.NullDecimal `json:"sum_income" gorm:"type:decimal(15,2)"`
}

func (Income) TableName() string {
	return "income"
}
