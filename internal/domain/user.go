package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string `validate:"required,max=80"`
	FullName       string `validate:"required,max=100"`
	Email          string `validate:"required,email,max=120"`
	Phone          string `validate:"max=20"`
	Address        string
	TelegramChatID *int64
}
