package models

// AppStore identifies which store front an app entry belongs to.
type AppStore string

const (
	GooglePlay AppStore = "google-play"
	AppleStore AppStore = "app-store"
)

// AppStatus is the lifecycle status of a portfolio entry.
type AppStatus string

const (
	StatusPublished   AppStatus = "published"
	StatusInReview    AppStatus = "in-review"
	StatusDevelopment AppStatus = "development"
)

// AppRecord is one portfolio entry in the gallery.
//
// ID is assigned at creation time and never changes afterwards. IconURL and
// ScreenshotURLs either point below the public upload prefix ("/uploads/...")
// or are fully qualified external URLs; they are never raw filesystem paths.
type AppRecord struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Developer      string    `json:"developer"`
	Description    string    `json:"description"`
	IconURL        string    `json:"iconUrl"`
	ScreenshotURLs []string  `json:"screenshotUrls"`
	Store          AppStore  `json:"store"`
	Status         AppStatus `json:"status"`
	Rating         float64   `json:"rating"`
	Downloads      string    `json:"downloads"`
	Views          int       `json:"views"`
	Likes          int       `json:"likes"`
	UploadDate     string    `json:"uploadDate"`
	Tags           []string  `json:"tags,omitempty"`
	StoreURL       string    `json:"storeUrl,omitempty"`
	Version        string    `json:"version,omitempty"`
	Size           string    `json:"size,omitempty"`
	Category       string    `json:"category,omitempty"`
}

// AppUpdate carries a partial update for an app record. Nil fields keep the
// stored value; a non-nil ScreenshotURLs or Tags replaces the stored list
// wholesale.
type AppUpdate struct {
	Name           *string    `json:"name,omitempty"`
	Developer      *string    `json:"developer,omitempty"`
	Description    *string    `json:"description,omitempty"`
	IconURL        *string    `json:"iconUrl,omitempty"`
	ScreenshotURLs []string   `json:"screenshotUrls,omitempty"`
	Store          *AppStore  `json:"store,omitempty"`
	Status         *AppStatus `json:"status,omitempty"`
	Rating         *float64   `json:"rating,omitempty"`
	Downloads      *string    `json:"downloads,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	StoreURL       *string    `json:"storeUrl,omitempty"`
	Version        *string    `json:"version,omitempty"`
	Size           *string    `json:"size,omitempty"`
	Category       *string    `json:"category,omitempty"`
}

// ValidStore reports whether s is one of the two known store fronts.
func ValidStore(s AppStore) bool {
	return s == GooglePlay || s == AppleStore
}

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s AppStatus) bool {
	return s == StatusPublished || s == StatusInReview || s == StatusDevelopment
}
