package slide

import (
	"context"
	"fmt"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
	"github.com/gruppe10/inflowscreen-backend/pkg/ctxutil"
)

// GetSlide returns a single slide of the authenticated account's organisation,
// overlays included. Returns domain.ErrNotFound for slides of other
// organisations, indistinguishable from a missing slide.
func (s *Service) GetSlide(ctx context.Context, slideID int64) (*domain.Slide, error) {
	email, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	org, err := s.organisations.GetByAccountEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve organisation: %w", err)
	}

	sl, err := s.slides.GetByID(ctx, org.ID, slideID)
	if err != nil {
		return nil, fmt.Errorf("get slide: %w", err)
	}

	if err := s.loadOverlays(ctx, sl); err != nil {
		return nil, err
	}

	return sl, nil
}
