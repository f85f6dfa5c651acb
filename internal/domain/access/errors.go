package access

import "errors"

var (
	ErrTemplateNotFound = errors.New("access template not found")
	ErrInvalidRole      = errors.New("invalid role for access template")
)
