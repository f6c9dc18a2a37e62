package types

import "errors"

var (
	ErrRiderNotFound    = errors.New("rider profile not found")
	ErrPhoneAlreadyUsed = errors.New("rider with this phone already registered")
	ErrInvalidMobile    = errors.New("mobile number must be exactly 10 digits")
	ErrPlatformNotFound = errors.New("delivery platform not found")
	ErrAreaNotFound     = errors.New("service area not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrNotFound = errors.New("requested item not found")
)
