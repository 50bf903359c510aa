package model

// User represents an account holder of the requirement service.
type User struct {
	ID               int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username         string `json:"username" gorm:"size:255;not null;index"`
	PasswordHash     string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsAdmin          bool   `json:"is_admin" gorm:"default:false"`
	IntegrationToken string `json:"-" gorm:"size:2048"` // Partner issued bearer token, opaque to us
}

// HasIntegration reports whether the partner registration succeeded for this user.
func (u *User) HasIntegration() bool {
	return u.IntegrationToken != ""
}
