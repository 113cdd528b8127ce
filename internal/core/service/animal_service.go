package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AnimalService implements CRUD over animal profiles. Writes are admin-only;
// the RBAC middleware enforces that before requests reach this layer.
type AnimalService struct {
	repo   ports.AnimalRepository
	logger zerolog.Logger
}

func NewAnimalService(repo ports.AnimalRepository, logger zerolog.Logger) *AnimalService {
	return &AnimalService{repo: repo, logger: logger}
}

func (s *AnimalService) List(ctx context.Context, page ports.ListPage) (*ports.AnimalList, error) {
	animals, total, err := s.repo.List(ctx, clampPage(page))
	if err != nil {
		return nil, err
	}
	return &ports.AnimalList{Animals: animals, Total: total}, nil
}

func (s *AnimalService) Get(ctx context.Context, id string) (*domain.Animal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnimalService) Create(ctx context.Context, input ports.AnimalInput) (*domain.Animal, error) {
	now := time.Now().UTC()
	animal := &domain.Animal{
		Name:               input.Name,
		Species:            input.Species,
		Habitat:            input.Habitat,
		Diet:               input.Diet,
		ConservationStatus: domain.ConservationStatus(input.ConservationStatus),
		FunFacts:           input.FunFacts,
		ImageURL:           input.ImageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Insert(ctx, animal)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("animal_id", created.ID).Str("name", created.Name).Msg("animal created")
	return created, nil
}

func (s *AnimalService) Update(ctx context.Context, id string, input ports.AnimalInput) (*domain.Animal, error) {
	animal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	animal.Name = input.Name
	animal.Species = input.Species
	animal.Habitat = input.Habitat
	animal.Diet = input.Diet
	animal.ConservationStatus = domain.ConservationStatus(input.ConservationStatus)
	animal.FunFacts = input.FunFacts
	animal.ImageURL = input.ImageURL
	animal.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

func (s *AnimalService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// clampPage normalizes pagination to sane bounds.
func clampPage(page ports.ListPage) ports.ListPage {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	return page
}
