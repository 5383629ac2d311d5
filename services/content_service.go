package services

import (
	"context"
	"errors"
	"time"

	"gradpath/dto"
	"gradpath/models"
	"gradpath/repositories"
)

// ErrNotFound is returned when a content item does not exist.
var ErrNotFound = errors.New("content not found")

// ContentReader is the subset of a repository a ContentService needs.
type ContentReader[M any] interface {
	List(ctx context.Context, opt repositories.ListOptions) ([]M, error)
	FindByID(ctx context.Context, hexID string) (*M, error)
	FindBySlug(ctx context.Context, slug string) (*M, error)
}

// ListInput carries the optional listing filters accepted by the API.
type ListInput struct {
	Category string
	Tag      string
	Upcoming bool
}

// ContentService encapsulates read logic for one content kind and DTO mapping
type ContentService[M any, D any] struct {
	repo   ContentReader[M]
	toDTO  func(M) D
	nowFun func() time.Time
}

func newContentService[M any, D any](repo ContentReader[M], toDTO func(M) D) *ContentService[M, D] {
	return &ContentService[M, D]{repo: repo, toDTO: toDTO, nowFun: time.Now}
}

func NewServiceService(repo ContentReader[models.Service]) *ContentService[models.Service, dto.ServiceDTO] {
	return newContentService(repo, dto.NewServiceDTO)
}

func NewBlogService(repo ContentReader[models.Blog]) *ContentService[models.Blog, dto.BlogDTO] {
	return newContentService(repo, dto.NewBlogDTO)
}

func NewEventService(repo ContentReader[models.Event]) *ContentService[models.Event, dto.EventDTO] {
	return newContentService(repo, dto.NewEventDTO)
}

// List returns every item matching in. The result is never nil.
func (s *ContentService[M, D]) List(ctx context.Context, in ListInput) ([]D, error) {
	items, err := s.repo.List(ctx, repositories.ListOptions{
		Category: in.Category,
		Tag:      in.Tag,
		Upcoming: in.Upcoming,
		Now:      s.nowFun(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, s.toDTO(item))
	}
	return out, nil
}

// GetByID loads an item by its ObjectID hex and returns a DTO
func (s *ContentService[M, D]) GetByID(ctx context.Context, hexID string) (*D, error) {
	return s.one(s.repo.FindByID(ctx, hexID))
}

// GetBySlug loads an item by slug and returns a DTO
func (s *ContentService[M, D]) GetBySlug(ctx context.Context, slug string) (*D, error) {
	return s.one(s.repo.FindBySlug(ctx, slug))
}

func (s *ContentService[M, D]) one(item *M, err error) (*D, error) {
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	d := s.toDTO(*item)
	return &d, nil
}
