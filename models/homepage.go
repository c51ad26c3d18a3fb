package models

import (
	"github.com/shopspring/decimal"
)

// HomepageRow 首页视图：users LEFT JOIN income LEFT JOIN deduction
// 没有对应收入/减免记录时相关字段为 null
type HomepageRow struct {
	ID               uint                `json:"id"`
	Firstname        string              `json:"firstname"`
	Lastname         string              `json:"lastname"`
	Email            string              `json:"email"`
	Salary           decimal.NullDecimal `json:"salary"`
	Freelance        decimal.NullDecimal `json:"freelance"`
	Copyright        decimal.NullDecimal `json:"copyright"`
	InterestDividend decimal.NullDecimal `json:"interest_dividend"`
	Rent             decimal.NullDecimal `json:"rent"`
	Profession       decimal.NullDecimal `json:"profession"`
	Contractor       decimal.NullDecimal `json:"contractor"`
	SellProducts     decimal.NullDecimal `json:"sell_products"`
	SumIncome        decimal.NullDecimal `json:"sum_income"`
	PersonalFamily   decimal.NullDecimal `json:"personal_family"`
	SavingInvest     decimal.NullDecimal `json:"saving_invest"`
	Residence        decimal.NullDecimal `json:"residence"`
	Donate           decimal.NullDecimal `json:"donate"`
	Other            decimal.NullDecimal `json:"other"`
}

// HomepageColumns 首页查询的列，顺序与导出表头一致
var HomepageColumns = []string{
	"u.id", "u.firstname", "u.lastname", "u.email",
	"i.salary", "i.freelance", "i.copyright", "i.interest_dividend",
	"i.rent", "i.profession", "i.contractor", "i.sell_products", "i.sum_income",
	"d.personal_family", "d.saving_invest", "d.residence", "d.donate", "d.other",
}

// Cells 按 HomepageColumns 顺序返回单元格值，空值为 nil
func (r HomepageRow) Cells() []any {
	cells := []any{r.ID, r.Firstname, r.Lastname, r.Email}
	for _, v := range []decimal.NullDecimal{
		r.Salary, r.Freelance, r.Copyright, r.InterestDividend,
		r.Rent, r.Profession, r.Contractor, r.SellProducts, r.SumIncome,
		r.PersonalFamily, r.SavingInvest, r.Residence, r.Donate, r.Other,
	} {
		if v.Valid {
			f, _ := v.Decimal.Float64()
			cells = append(cells, f)
		} else {
			cells = append(cells, nil)
		}
	}
	return cells
}
