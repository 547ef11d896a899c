package domain

// User is the authenticated principal that owns all persisted entities.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Never serialized
	AuditFields
}
