package models

// User 用户模型，密码字段只保存 bcrypt 哈希
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Firstname string `json:"firstname" gorm:"size:100;not null"`
	Lastname  string `json:"lastname" gorm:"size:100;not null"`
	Email     string `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password  string `json:"password,omitempty" gorm:"size:255;not null"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
