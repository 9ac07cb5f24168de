package domain

import "time"

// User owns websites and receives notifications. Authentication lives outside
// this service; the user record here exists so alerts have a recipient.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
