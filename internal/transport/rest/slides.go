package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
	"github.com/gruppe10/inflowscreen-backend/internal/service/slide"
)

// slideService defines the minimal interface needed by SlideHandler.
type slideService interface {
	CreateSlide(ctx context.Context, input slide.CreateSlideInput) (*domain.Slide, error)
	GetSlide(ctx context.Context, slideID int64) (*domain.Slide, error)
	ListSlides(ctx context.Context, filter domain.SlideFilter) ([]*domain.Slide, error)
}

// SlideHandler serves slide REST endpoints.
type SlideHandler struct {
	svc slideService
	log *slog.Logger
}

// NewSlideHandler creates a SlideHandler.
func NewSlideHandler(svc slideService, logger *slog.Logger) *SlideHandler {
	return &SlideHandler{svc: svc, log: logger.With("handler", "slides")}
}

type createSlideRequest struct {
	Title     string           `json:"title"`
	Images    []imageRequest   `json:"images"`
	TextBoxes []textBoxRequest `json:"textBoxes"`
}

type imageRequest struct {
	URL    string `json:"url"`
	PosX   int    `json:"posX"`
	PosY   int    `json:"posY"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	ZIndex int    `json:"zIndex"`
}

type textBoxRequest struct {
	Text      string  `json:"text"`
	FontSize  int     `json:"fontSize"`
	FontColor *string `json:"fontColor,omitempty"`
	PosX      int     `json:"posX"`
	PosY      int     `json:"posY"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	ZIndex    int     `json:"zIndex"`
}

type slideResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	CreatedAt time.Time         `json:"createdAt"`
	Images    []imageResponse   `json:"images"`
	TextBoxes []textBoxResponse `json:"textBoxes"`
}

type imageResponse struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	PosX   int    `json:"posX"`
	PosY   int    `json:"posY"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	ZIndex int    `json:"zIndex"`
}

type textBoxResponse struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	FontSize  int     `json:"fontSize"`
	FontColor *string `json:"fontColor,omitempty"`
	PosX      int     `json:"posX"`
	PosY      int     `json:"posY"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	ZIndex    int     `json:"zIndex"`
}

// Create handles POST /slides.
func (h *SlideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := slide.CreateSlideInput{Title: req.Title}
	for _, img := range req.Images {
		input.Images = append(input.Images, slide.ImageInput(img))
	}
	for _, box := range req.TextBoxes {
		input.TextBoxes = append(input.TextBoxes, slide.TextBoxInput(box))
	}

	created, err := h.svc.CreateSlide(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSlideResponse(created))
}

// Get handles GET /slides/{id}.
func (h *SlideHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid slide id")
		return
	}

	s, err := h.svc.GetSlide(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSlideResponse(s))
}

// List handles GET /slides.
func (h *SlideHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.SlideFilter{
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		filter.Offset, _ = strconv.Atoi(offset)
	}

	slides, err := h.svc.ListSlides(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]slideResponse, 0, len(slides))
	for _, s := range slides {
		out = append(out, toSlideResponse(s))
	}

	writeJSON(w, http.StatusOK, map[string]any{"slides": out})
}

func (h *SlideHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "slide with this title already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toSlideResponse(s *domain.Slide) slideResponse {
	resp := slideResponse{
		ID:        s.ID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		Images:    make([]imageResponse, 0, len(s.Images)),
		TextBoxes: make([]textBoxResponse, 0, len(s.TextBoxes)),
	}

	for _, img := range s.Images {
		resp.Images = append(resp.Images, imageResponse{
			ID:     img.ID,
			URL:    img.URL,
			PosX:   img.PosX,
			PosY:   img.PosY,
			Width:  img.Width,
			Height: img.Height,
			ZIndex: img.ZIndex,
		})
	}

	for _, box := range s.TextBoxes {
		resp.TextBoxes = append(resp.TextBoxes, textBoxResponse{
			ID:        box.ID,
			Text:      box.Text,
			FontSize:  box.FontSize,
			FontColor: box.FontColor,
			PosX:      box.PosX,
			PosY:      box.PosY,
			Width:     box.Width,
			Height:    box.Height,
			ZIndex:    box.ZIndex,
		})
	}

	return resp
}
