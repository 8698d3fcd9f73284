package domain

import "time"

type User struct {
	ID             int       `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Description    string    `json:"description" db:"description"`
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"`
	Gender         *string   `json:"gender" db:"gender"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
