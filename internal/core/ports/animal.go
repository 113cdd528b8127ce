package ports

import (
	"context"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
)

// AnimalInput carries the editable fields of an animal profile.
type AnimalInput struct {
	Name               string
	Species            string
	Habitat            string
	Diet               string
	ConservationStatus string
	FunFacts           []string
	ImageURL           string
}

// ListPage is the common pagination request for list endpoints.
type ListPage struct {
	Page  int
	Limit int
}

// AnimalList is one page of animal profiles.
type AnimalList struct {
	Animals []domain.Animal
	Total   int64
}

type AnimalService interface {
	List(ctx context.Context, page ListPage) (*AnimalList, error)
	Get(ctx context.Context, id string) (*domain.Animal, error)
	Create(ctx context.Context, input AnimalInput) (*domain.Animal, error)
	Update(ctx context.Context, id string, input AnimalInput) (*domain.Animal, error)
	Delete(ctx context.Context, id string) error
}

type AnimalRepository interface {
	List(ctx context.Context, page ListPage) ([]domain.Animal, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Animal, error)
	Insert(ctx context.Context, animal *domain.Animal) (*domain.Animal, error)
	Update(ctx context.Context, animal *domain.Animal) error
	Delete(ctx context.Context, id string) error
}
