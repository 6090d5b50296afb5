package usecase

import (
	"errors"

	"talent-match/internal/domain/matching"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	// ErrDataIntegrity is returned when stored levels cannot be ordered.
	ErrDataIntegrity = matching.ErrDataIntegrity
)
