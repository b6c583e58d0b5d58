package models

import "time"

// Profile is the customer record behind a session. Created by the auth
// provider, read here for admin listings and order preloads.
type Profile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      string    `gorm:"type:varchar(20);default:'customer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
