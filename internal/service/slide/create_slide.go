package slide

import (
	"context"
	"fmt"
	"strings"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
	"github.com/gruppe10/inflowscreen-backend/pkg/ctxutil"
)

// CreateSlide creates a slide with all its overlays in a single transaction.
// The slide is attached to the organisation of the authenticated account.
//
// The whole write is atomic: if any overlay insert fails, the slide row is
// rolled back with it, so a slide is never persisted without its overlays.
// A duplicate title within the organisation surfaces as domain.ErrAlreadyExists,
// raised by the storage unique constraint rather than a pre-check, so
// concurrent requests cannot both pass.
func (s *Service) CreateSlide(ctx context.Context, input CreateSlideInput) (*domain.Slide, error) {
	email, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// The title is stored trimmed so whitespace variants of the same title
	// hit the per-organisation unique constraint.
	input.Title = strings.TrimSpace(input.Title)

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Title) > s.cfg.MaxTitleLength {
		return nil, domain.NewValidationError("title", fmt.Sprintf("too long (max %d)", s.cfg.MaxTitleLength))
	}
	if len(input.Images) > s.cfg.MaxOverlaysPerSet {
		return nil, domain.NewValidationError("images", fmt.Sprintf("too many (max %d)", s.cfg.MaxOverlaysPerSet))
	}
	if len(input.TextBoxes) > s.cfg.MaxOverlaysPerSet {
		return nil, domain.NewValidationError("text_boxes", fmt.Sprintf("too many (max %d)", s.cfg.MaxOverlaysPerSet))
	}

	var created *domain.Slide
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		org, err := s.organisations.GetByAccountEmail(txCtx, email)
		if err != nil {
			return fmt.Errorf("resolve organisation: %w", err)
		}

		created, err = s.slides.Create(txCtx, &domain.Slide{
			OrganisationID: org.ID,
			Title:          input.Title,
		})
		if err != nil {
			return fmt.Errorf("create slide: %w", err)
		}

		created.Images, err = s.images.CreateBatch(txCtx, created.ID, input.toImages())
		if err != nil {
			return fmt.Errorf("create slide images: %w", err)
		}

		created.TextBoxes, err = s.textBoxes.CreateBatch(txCtx, created.ID, input.toTextBoxes())
		if err != nil {
			return fmt.Errorf("create text boxes: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("slide created",
		"slide_id", created.ID,
		"organisation_id", created.OrganisationID,
		"images", len(created.Images),
		"text_boxes", len(created.TextBoxes),
	)

	return created, nil
}
