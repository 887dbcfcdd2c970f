package domain

import "time"

const avatarBaseURL = "https://api.dicebear.com/7.x/adventurer/svg?seed="

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AvatarURL derives the avatar image location for a display name.
func AvatarURL(name string) string {
	return avatarBaseURL + name
}

func (u *User) AvatarURL() string {
	return AvatarURL(u.Name)
}

type CreateUserInput struct {
	Name           string
	TelegramChatID *int64
}
