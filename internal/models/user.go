package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	Role      UserRole  `db:"role"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	StudentID string    `db:"student_id"`
	Course    string    `db:"course"`
	YearLevel string    `db:"year_level"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
