// Package slide implements the slide business logic: transactional creation
// of a slide together with its overlays, and organisation-scoped reads.
package slide

import (
	"context"
	"log/slog"

	"github.com/gruppe10/inflowscreen-backend/internal/config"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type organisationRepo interface {
	GetByAccountEmail(ctx context.Context, email string) (*domain.Organisation, error)
}

type slideRepo interface {
	Create(ctx context.Context, slide *domain.Slide) (*domain.Slide, error)
	GetByID(ctx context.Context, orgID, slideID int64) (*domain.Slide, error)
	ListByOrganisation(ctx context.Context, orgID int64, filter domain.SlideFilter) ([]*domain.Slide, error)
}

type slideImageRepo interface {
	CreateBatch(ctx context.Context, slideID int64, images []domain.SlideImage) ([]domain.SlideImage, error)
	ListBySlide(ctx context.Context, slideID int64) ([]domain.SlideImage, error)
}

type textBoxRepo interface {
	CreateBatch(ctx context.Context, slideID int64, boxes []domain.TextBox) ([]domain.TextBox, error)
	ListBySlide(ctx context.Context, slideID int64) ([]domain.TextBox, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the slide business logic.
type Service struct {
	log           *slog.Logger
	organisations organisationRepo
	slides        slideRepo
	images        slideImageRepo
	textBoxes     textBoxRepo
	tx            txManager
	cfg           config.SlidesConfig
}

// NewService creates a new Slide service.
func NewService(
	logger *slog.Logger,
	organisations organisationRepo,
	slides slideRepo,
	images slideImageRepo,
	textBoxes textBoxRepo,
	tx txManager,
	cfg config.SlidesConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "slide"),
		organisations: organisations,
		slides:        slides,
		images:        images,
		textBoxes:     textBoxes,
		tx:            tx,
		cfg:           cfg,
	}
}
