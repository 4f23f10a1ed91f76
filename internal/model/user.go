package model

// User represents a login identity. Users are provisioned out of band (see
// cmd/seed); the API only reads them during authentication.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"size:255;not null;index"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
}
