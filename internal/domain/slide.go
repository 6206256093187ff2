package domain

import "time"

// Slide is a named unit of signage content composed of image and text-box
// overlays. The title is unique within one organisation, not globally.
type Slide struct {
	ID             int64
	OrganisationID int64
	Title          string
	CreatedAt      time.Time

	// Images and TextBoxes are populated by read paths that join the
	// overlay tables; they are zero-length (never nil) after such reads.
	Images    []SlideImage
	TextBoxes []TextBox
}

// SlideImage is a positioned image overlay owned by exactly one slide.
// SlideID always references a persisted slide row.
type SlideImage struct {
	ID      int64
	SlideID int64
	URL     string
	PosX    int
	PosY    int
	Width   int
	Height  int
	ZIndex  int
}

// TextBox is a positioned text overlay owned by exactly one slide.
type TextBox struct {
	ID        int64
	SlideID   int64
	Text      string
	FontSize  int
	FontColor *string
	PosX      int
	PosY      int
	Width     int
	Height    int
	ZIndex    int
}
