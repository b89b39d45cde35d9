package models

// Account is a login credential row in the legacy "register" table. The nim
// is the login key; uniqueness is not enforced at this layer.
type Account struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"column:username;size:64;not null" json:"username"`
	Nim      string `gorm:"column:nim;size:64;index;not null" json:"nim"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`
}

func (Account) TableName() string { return "register" }
