package directory

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// ReservedAdminUsername is the bootstrap administrator account. It can never
// be deleted through the roster API.
const ReservedAdminUsername = "admin"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	Role         string    `json:"role" gorm:"column:role;default:employee"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsProtected reports whether the user is the reserved bootstrap admin
// account, which must survive any delete request.
func (u *User) IsProtected() bool {
	return u.Username == ReservedAdminUsername
}
