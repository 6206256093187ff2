package slide

import (
	"strconv"
	"strings"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// CreateSlideInput holds the parameters for creating a slide with its overlays.
type CreateSlideInput struct {
	Title     string
	Images    []ImageInput
	TextBoxes []TextBoxInput
}

// ImageInput holds the parameters for a single image overlay.
type ImageInput struct {
	URL    string
	PosX   int
	PosY   int
	Width  int
	Height int
	ZIndex int
}

// TextBoxInput holds the parameters for a single text-box overlay.
type TextBoxInput struct {
	Text      string
	FontSize  int
	FontColor *string
	PosX      int
	PosY      int
	Width     int
	Height    int
	ZIndex    int
}

// Validate checks all fields and collects all errors.
func (i *CreateSlideInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	for ii, img := range i.Images {
		if img.URL == "" {
			errs = append(errs, domain.FieldError{Field: fieldIndex("images", ii, "url"), Message: "required"})
		}
		if img.Width < 0 || img.Height < 0 {
			errs = append(errs, domain.FieldError{Field: fieldIndex("images", ii, "size"), Message: "must not be negative"})
		}
	}

	for bi, box := range i.TextBoxes {
		if box.Text == "" {
			errs = append(errs, domain.FieldError{Field: fieldIndex("text_boxes", bi, "text"), Message: "required"})
		}
		if box.FontSize <= 0 {
			errs = append(errs, domain.FieldError{Field: fieldIndex("text_boxes", bi, "font_size"), Message: "must be positive"})
		}
		if box.Width < 0 || box.Height < 0 {
			errs = append(errs, domain.FieldError{Field: fieldIndex("text_boxes", bi, "size"), Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// toImages converts image inputs to domain objects (without identities).
func (i *CreateSlideInput) toImages() []domain.SlideImage {
	if len(i.Images) == 0 {
		return nil
	}
	images := make([]domain.SlideImage, len(i.Images))
	for ii, img := range i.Images {
		images[ii] = domain.SlideImage{
			URL:    img.URL,
			PosX:   img.PosX,
			PosY:   img.PosY,
			Width:  img.Width,
			Height: img.Height,
			ZIndex: img.ZIndex,
		}
	}
	return images
}

// toTextBoxes converts text-box inputs to domain objects (without identities).
func (i *CreateSlideInput) toTextBoxes() []domain.TextBox {
	if len(i.TextBoxes) == 0 {
		return nil
	}
	boxes := make([]domain.TextBox, len(i.TextBoxes))
	for bi, box := range i.TextBoxes {
		boxes[bi] = domain.TextBox{
			Text:      box.Text,
			FontSize:  box.FontSize,
			FontColor: box.FontColor,
			PosX:      box.PosX,
			PosY:      box.PosY,
			Width:     box.Width,
			Height:    box.Height,
			ZIndex:    box.ZIndex,
		}
	}
	return boxes
}

// fieldIndex builds a field path like "images[2].url".
func fieldIndex(collection string, index int, field string) string {
	return collection + "[" + strconv.Itoa(index) + "]." + field
}
