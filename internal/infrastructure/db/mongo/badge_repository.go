package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
)

const badgeCollection = "awarded_badges"

// BadgeRepository persists awarded badges. The compound unique index on
// (account_id, badge_code) makes Award idempotent under concurrent
// submissions: the second insert hits a duplicate-key error and reports
// "already held" instead of failing.
type BadgeRepository struct {
	coll *mongo.Collection
}

func NewBadgeRepository(db *mongo.Database) *BadgeRepository {
	return &BadgeRepository{coll: db.Collection(badgeCollection)}
}

type mongoAwardedBadge struct {
	AccountID string `bson:"account_id"`
	BadgeCode string `bson:"badge_code"`
	AwardedAt int64  `bson:"awarded_at"`
}

func (r *BadgeRepository) Award(ctx context.Context, accountID, badgeCode string) (bool, error) {
	doc := mongoAwardedBadge{
		AccountID: accountID,
		BadgeCode: badgeCode,
		AwardedAt: time.Now().UTC().Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("award badge: %w", err)
	}
	return true, nil
}

func (r *BadgeRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.AwardedBadge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "awarded_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAwardedBadge
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode badges: %w", err)
	}

	badges := make([]domain.AwardedBadge, 0, len(docs))
	for _, d := range docs {
		badges = append(badges, domain.AwardedBadge{
			AccountID: d.AccountID,
			BadgeCode: d.BadgeCode,
			AwardedAt: unixToTime(d.AwardedAt),
		})
	}
	return badges, nil
}

func (r *BadgeRepository) DeleteByAccount(ctx context.Context, accountID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"account_id": accountID}); err != nil {
		return fmt.Errorf("delete badges: %w", err)
	}
	return nil
}
