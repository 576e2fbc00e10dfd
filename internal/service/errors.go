package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrValidationNameRequired    = errors.New("name is required")
	ErrValidationStoreInvalid    = errors.New("store must be google-play or app-store")
	ErrValidationStatusInvalid   = errors.New("status must be published, in-review, or development")
	ErrValidationTypeInvalid     = errors.New("type must be app-story or news")
	ErrValidationTitleRequired   = errors.New("title is required")
	ErrValidationIconRequired    = errors.New("icon file is required")
	ErrValidationContactRequired = errors.New("name, email, and subject are required")
	ErrValidationMessageRequired = errors.New("message is required")
	ErrValidationConsentRequired = errors.New("marketing consent is required for event inquiries")
	ErrValidationEmailInvalid    = errors.New("invalid email address")

	ErrMailNotConfigured = errors.New("mail service is not configured")
)
