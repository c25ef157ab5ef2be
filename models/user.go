package models

import "time"

type UserRole string

const (
	UserRoleOwner       UserRole = "OWNER"
	UserRoleSalesperson UserRole = "SALESPERSON"
	UserRoleCustomer    UserRole = "CUSTOMER"
)

// IsStaff reports whether the role has unrestricted authority over forms.
// OWNER and SALESPERSON are deliberately equivalent.
func (r UserRole) IsStaff() bool {
	return r == UserRoleOwner || r == UserRoleSalesperson
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleOwner, UserRoleSalesperson, UserRoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	FirstName string    `gorm:"size:50" json:"first_name"`
	LastName  string    `gorm:"size:50" json:"last_name"`
	Role      UserRole  `gorm:"type:user_role;not null;default:'CUSTOMER'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
