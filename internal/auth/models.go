package auth

type User struct {
	ID             uint   `gorm:"primaryKey" json:"user_id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Name           string `gorm:"not null" json:"name"`
	HashedPassword string `gorm:"not null" json:"-"`
}

func (User) TableName() string { return "app_auth.users" }
