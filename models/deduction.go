package models

import (
	"github.com/shopspring/decimal"
)

// Deduction 减免记录模型
type Deduction struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	UserID         uint                `json:"user_id" gorm:"index;not null"`
	PersonalFamily decimal.NullDecimal `json:"personal_family" gorm:"type:decimal(15,2)"`
	SavingInvest   decimal.NullDecimal `json:"saving_invest" gorm:"type:decimal(15,2)"`
	Residence      decimal.NullDecimal `json:"residence" gorm:"type:decimal(15,2)"`
	Donate         decimal.NullDecimal `json:"donate" gorm:"type:decimal(15,2)"`
	Other          decimal.NullDecimal `json:"other" gorm:"type:decimal(15,2)"`
}

func (Deduction) TableName() string {
	return "deduction"
}
