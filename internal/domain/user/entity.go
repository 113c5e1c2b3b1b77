package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLogist    Role = "logist"
	RoleManager   Role = "manager"
	RoleFinancier Role = "financier"
	RoleUser      Role = "user"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLogist, RoleManager, RoleFinancier, RoleUser:
		return true
	}
	return false
}

type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
	LanguageDE Language = "de"
)

// User represents an internal staff account
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     *string
	Email        string
	Role         Role
	Position     *string
	Language     Language
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
