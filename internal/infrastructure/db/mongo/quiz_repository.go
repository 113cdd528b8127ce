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

const (
	quizCollection   = "quizzes"
	resultCollection = "quiz_results"
)

type QuizRepository struct {
	coll *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{coll: db.Collection(quizCollection)}
}

type mongoQuestion struct {
	Prompt      string   `bson:"prompt"`
	Choices     []string `bson:"choices"`
	AnswerIndex int      `bson:"answer_index"`
	Explanation string   `bson:"explanation,omitempty"`
}

type mongoQuiz struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	AnimalID   string             `bson:"animal_id,omitempty"`
	Difficulty string             `bson:"difficulty"`
	Questions  []mongoQuestion    `bson:"questions"`
	CreatedAt  int64              `bson:"created_at"`
}

func (m mongoQuiz) toDomain() domain.Quiz {
	questions := make([]domain.Question, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, domain.Question{
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			AnswerIndex: q.AnswerIndex,
			Explanation: q.Explanation,
		})
	}
	return domain.Quiz{
		ID:         m.ID.Hex(),
		Title:      m.Title,
		AnimalID:   m.AnimalID,
		Difficulty: m.Difficulty,
		Questions:  questions,
		CreatedAt:  unixToTime(m.CreatedAt),
	}
}

func (r *QuizRepository) List(ctx context.Context, page ports.ListPage) ([]domain.Quiz, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count quizzes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page.Page - 1) * page.Limit)).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list quizzes: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoQuiz
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode quizzes: %w", err)
	}

	quizzes := make([]domain.Quiz, 0, len(docs))
	for _, d := range docs {
		quizzes = append(quizzes, d.toDomain())
	}
	return quizzes, total, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*domain.Quiz, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuizNotFound
	}

	var m mongoQuiz
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("find quiz: %w", err)
	}
	quiz := m.toDomain()
	return &quiz, nil
}

func (r *QuizRepository) Insert(ctx context.Context, quiz *domain.Quiz) (*domain.Quiz, error) {
	questions := make([]mongoQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, mongoQuestion{
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			AnswerIndex: q.AnswerIndex,
			Explanation: q.Explanation,
		})
	}

	doc := mongoQuiz{
		Title:      quiz.Title,
		AnimalID:   quiz.AnimalID,
		Difficulty: quiz.Difficulty,
		Questions:  questions,
		CreatedAt:  quiz.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert quiz: %w", err)
	}

	created := *quiz
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuizNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuizNotFound
	}
	return nil
}

// ResultRepository persists scored quiz submissions.
type ResultRepository struct {
	coll *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{coll: db.Collection(resultCollection)}
}

type mongoResult struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AccountID string             `bson:"account_id"`
	QuizID    string             `bson:"quiz_id"`
	Score     int                `bson:"score"`
	Total     int                `bson:"total"`
	Answers   []int              `bson:"answers"`
	TakenAt   int64              `bson:"taken_at"`
}

func (r *ResultRepository) Insert(ctx context.Context, result *domain.QuizResult) (*domain.QuizResult, error) {
	doc := mongoResult{
		AccountID: result.AccountID,
		QuizID:    result.QuizID,
		Score:     result.Score,
		Total:     result.Total,
		Answers:   result.Answers,
		TakenAt:   result.TakenAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert result: %w", err)
	}

	created := *result
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ResultRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"account_id": accountID})
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return count, nil
}

func (r *ResultRepository) DeleteByAccount(ctx context.Context, accountID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"account_id": accountID}); err != nil {
		return fmt.Errorf("delete results: %w", err)
	}
	return nil
}
