package domain

import "errors"

// Ошибки бизнес-логики, транспорт мапит их на коды ответа.
var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidScore      = errors.New("score out of range")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrInvalidCourseID   = errors.New("invalid course id")
	ErrInvalidAvatarID   = errors.New("invalid avatar id")
	ErrAvatarNotOwned    = errors.New("avatar is not unlocked")
	ErrAlreadyOwned      = errors.New("avatar already unlocked")
)
