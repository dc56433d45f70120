package models

import (
	"time"
)

// Officer представляет зарегистрированного аудитора социальных схем
type Officer struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Department   string    `db:"department"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// RegisterRequest представляет запрос на регистрацию аудитора
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// LoginRequest представляет запрос на вход аудитора
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OfficerInfo представляет публичные данные аудитора в ответах API
type OfficerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// AuthResponse представляет ответ на регистрацию или вход
type AuthResponse struct {
	Message string      `json:"message"`
	User    OfficerInfo `json:"user"`
}
