package audio

import "errors"

var (
	ErrFileNotFound   = errors.New("audio file not found")
	ErrEmptyFile      = errors.New("file is empty")
	ErrFileTooLarge   = errors.New("file exceeds size limit")
	ErrInvalidType    = errors.New("unsupported audio format")
	ErrOrderNotFound  = errors.New("order not found")
	ErrAccessDenied   = errors.New("access to order files denied")
	ErrInvalidName    = errors.New("invalid file name")
)
