// Package errors contains domain-specific errors for the bot domain
package errors

import (
	pkgerrors "github.com/yourusername/video-downloader-bot/pkg/errors"
)

// Domain errors for download bot operations
var (
	ErrUnsupportedURL   = pkgerrors.NewValidationError("URL is not from a supported platform")
	ErrResolutionFailed = pkgerrors.NewInternalError("could not extract video information")
	ErrNoFormats        = pkgerrors.NewNotFoundError("no downloadable formats found")
	ErrSessionExpired   = pkgerrors.NewNotFoundError("video session expired")
	ErrNotSessionOwner  = pkgerrors.NewPermissionError("download session belongs to another user")
	ErrFormatNotFound   = pkgerrors.NewNotFoundError("format not found")
	ErrFetchFailed      = pkgerrors.NewInternalError("download failed")
	ErrInvalidAction    = pkgerrors.NewValidationError("malformed callback payload")
)
