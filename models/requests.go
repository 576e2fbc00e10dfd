package models

// DeleteFileRequest asks for one previously uploaded file to be removed.
type DeleteFileRequest struct {
	URL string `json:"url"`
}

// DeleteAppRequest asks for an app's media files to be removed best-effort
// and then its record to be deleted.
type DeleteAppRequest struct {
	ID             string   `json:"id"`
	IconURL        string   `json:"iconUrl"`
	ScreenshotURLs []string `json:"screenshotUrls"`
}

// LoginRequest carries the admin password for the server-side credential
// check.
type LoginRequest struct {
	Password string `json:"password"`
}

// MailMessage is one contact/feedback/event submission. Attachment is only
// set for multipart submissions carrying a file.
type MailMessage struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Subject          string `json:"subject"`
	Message          string `json:"message"`
	Type             string `json:"type"`
	AgreeToMarketing bool   `json:"agreeToMarketing"`

	Attachment *MailAttachment `json:"-"`

	// ClientIP is filled in by the handler for the mail body footer.
	ClientIP string `json:"-"`
}

// MailAttachment is the optional file attached to a mail submission.
type MailAttachment struct {
	Filename string
	Content  []byte
}
