package domain

import "errors"

var (
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrSettingsNotFound = errors.New("settings not found")
	ErrInvalidURL       = errors.New("invalid url")
	ErrTabNotFound      = errors.New("tab not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrHostUnavailable  = errors.New("browser host unavailable")
)
