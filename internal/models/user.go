package models

import (
	"errors"
	"strings"
)

type User struct {
	Base
	Email    string `json:"email" validate:"required,email" desc:"The email of the user" example:"john.doe@example.com"`
	Age      int    `json:"age" validate:"gte=0" desc:"Age in years" example:"42"`
	nickname string
}

// DisplayName is read-only: there is no SetDisplayName
func (u User) DisplayName() string {
	if u.nickname != "" {
		return u.nickname
	}
	if u.Root != nil {
		return u.Name
	}
	return u.Email
}

func (u *User) Nickname() string {
	return u.nickname
}

func (u *User) SetNickname(nickname string) error {
	if strings.TrimSpace(nickname) == "" {
		return errors.New("nickname must not be blank")
	}
	u.nickname = nickname
	return nil
}
