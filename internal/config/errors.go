package config

import "errors"

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidPlayMode = errors.New("play mode must be random or sequential")
	ErrInvalidDisplay  = errors.New("invalid display settings")
	ErrInvalidRegistry = errors.New("invalid registry settings")
	ErrInvalidPreview  = errors.New("invalid preview settings")
	ErrUnknownPreset   = errors.New("unknown preset")
)
