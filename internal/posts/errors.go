package posts

import (
	"errors"
)

var (
	ErrSlugRequired = errors.New("posts: slug is required")
	ErrSlugInvalid  = errors.New("posts: slug contains invalid characters")
	ErrSlugConflict = errors.New("posts: slug conflict")
	ErrNilDocument  = errors.New("posts: nil document")
)
