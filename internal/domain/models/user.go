package models

import (
	"context"
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

// User is an operator account for the admin panel.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	password  string
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func (u *User) GetPassword() string {
	return u.password
}

func (u *User) SetPassword(password string) {
	u.password = password
}

func (u *User) IsAnonymous() bool {
	return u == anonymousUser
}

var anonymousUser = &User{}

func AnonymousUser() *User {
	return anonymousUser
}

type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- context helpers ---

type userCtxKeyStruct struct{}

var userCtxKey = &userCtxKeyStruct{}

func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

func UserFromContext(ctx context.Context) *User {
	user, ok := ctx.Value(userCtxKey).(*User)
	if !ok {
		return nil
	}
	return user
}
