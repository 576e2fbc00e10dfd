package models

// UploadResult is returned by the generic asset upload route.
type UploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}

// ImageUploadResult is returned by the content image upload route.
type ImageUploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// DeleteAppResult reports the outcome of a best-effort delete-with-media
// flow. Record removal is authoritative: Success stays true even when some
// media files could not be removed; those end up in Errors so the caller
// can decide whether to warn the user.
type DeleteAppResult struct {
	Success      bool     `json:"success"`
	DeletedFiles []string `json:"deletedFiles"`
	Errors       []string `json:"errors"`
	Message      string   `json:"message"`
}

// MessageResponse is a generic `{message}` body.
type MessageResponse struct {
	Message string `json:"message"`
}

// MailResponse is returned after a successful mail submission.
type MailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the generic `{error}` failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries a freshly issued admin session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// BuildInfo describes the running binary for the version endpoint.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
