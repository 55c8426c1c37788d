package user

import "errors"

var (
	ErrAuthRequired          = errors.New("authentication required")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrUnknownRole           = errors.New("unknown role")
)
