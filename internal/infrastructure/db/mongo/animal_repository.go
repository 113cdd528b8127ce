package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

const animalCollection = "animals"

type AnimalRepository struct {
	coll *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{coll: db.Collection(animalCollection)}
}

type mongoAnimal struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	Species            string             `bson:"species"`
	Habitat            string             `bson:"habitat"`
	Diet               string             `bson:"diet"`
	ConservationStatus string             `bson:"conservation_status"`
	FunFacts           []string           `bson:"fun_facts,omitempty"`
	ImageURL           string             `bson:"image_url,omitempty"`
	CreatedAt          int64              `bson:"created_at"`
	UpdatedAt          int64              `bson:"updated_at"`
}

func (m mongoAnimal) toDomain() domain.Animal {
	return domain.Animal{
		ID:                 m.ID.Hex(),
		Name:               m.Name,
		Species:            m.Species,
		Habitat:            m.Habitat,
		Diet:               m.Diet,
		ConservationStatus: domain.ConservationStatus(m.ConservationStatus),
		FunFacts:           m.FunFacts,
		ImageURL:           m.ImageURL,
		CreatedAt:          unixToTime(m.CreatedAt),
		UpdatedAt:          unixToTime(m.UpdatedAt),
	}
}

func (r *AnimalRepository) List(ctx context.Context, page ports.ListPage) ([]domain.Animal, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count animals: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page.Page - 1) * page.Limit)).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list animals: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAnimal
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode animals: %w", err)
	}

	animals := make([]domain.Animal, 0, len(docs))
	for _, d := range docs {
		animals = append(animals, d.toDomain())
	}
	return animals, total, nil
}

func (r *AnimalRepository) FindByID(ctx context.Context, id string) (*domain.Animal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}

	var m mongoAnimal
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("find animal: %w", err)
	}
	animal := m.toDomain()
	return &animal, nil
}

func (r *AnimalRepository) Insert(ctx context.Context, animal *domain.Animal) (*domain.Animal, error) {
	doc := mongoAnimal{
		Name:               animal.Name,
		Species:            animal.Species,
		Habitat:            animal.Habitat,
		Diet:               animal.Diet,
		ConservationStatus: string(animal.ConservationStatus),
		FunFacts:           animal.FunFacts,
		ImageURL:           animal.ImageURL,
		CreatedAt:          animal.CreatedAt.Unix(),
		UpdatedAt:          animal.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert animal: %w", err)
	}

	created := *animal
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AnimalRepository) Update(ctx context.Context, animal *domain.Animal) error {
	oid, err := primitive.ObjectIDFromHex(animal.ID)
	if err != nil {
		return domain.ErrAnimalNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":                animal.Name,
		"species":             animal.Species,
		"habitat":             animal.Habitat,
		"diet":                animal.Diet,
		"conservation_status": string(animal.ConservationStatus),
		"fun_facts":           animal.FunFacts,
		"image_url":           animal.ImageURL,
		"updated_at":          animal.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update animal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAnimalNotFound
	}
	return nil
}

func (r *AnimalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnimalNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnimalNotFound
	}
	return nil
}
