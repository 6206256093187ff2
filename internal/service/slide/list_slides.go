package slide

import (
	"context"
	"fmt"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
	"github.com/gruppe10/inflowscreen-backend/pkg/ctxutil"
)

// ListSlides returns all slides of the authenticated account's organisation,
// overlays included. Slides of other organisations are never visible.
func (s *Service) ListSlides(ctx context.Context, filter domain.SlideFilter) ([]*domain.Slide, error) {
	email, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	org, err := s.organisations.GetByAccountEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve organisation: %w", err)
	}

	slides, err := s.slides.ListByOrganisation(ctx, org.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}

	for _, sl := range slides {
		if err := s.loadOverlays(ctx, sl); err != nil {
			return nil, err
		}
	}

	return slides, nil
}

// loadOverlays populates a slide's images and text boxes.
func (s *Service) loadOverlays(ctx context.Context, sl *domain.Slide) error {
	var err error

	sl.Images, err = s.images.ListBySlide(ctx, sl.ID)
	if err != nil {
		return fmt.Errorf("load slide images: %w", err)
	}

	sl.TextBoxes, err = s.textBoxes.ListBySlide(ctx, sl.ID)
	if err != nil {
		return fmt.Errorf("load text boxes: %w", err)
	}

	return nil
}
