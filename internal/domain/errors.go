package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBriefingInProgress = errors.New("a briefing is already in progress")
	ErrMissingCredential  = errors.New("speech synthesis credential is not configured")
	ErrEmptyAudio         = errors.New("speech synthesis returned no audio")
)
