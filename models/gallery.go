package models

// GalleryFlag marks an app in the admin client's local gallery view. Flags
// never leave the client.
type GalleryFlag string

const (
	FlagFeatured GalleryFlag = "featured"
	FlagEvent    GalleryFlag = "event"
)
