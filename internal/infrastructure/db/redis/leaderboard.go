package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

const leaderboardKey = "leaderboard:alltime"

// Leaderboard ranks accounts by cumulative quiz points in a Redis sorted set.
// Member = account id, score = total points.
type Leaderboard struct {
	client *redis.Client
}

func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{client: client}
}

func (l *Leaderboard) AddScore(ctx context.Context, accountID string, points int64) error {
	if err := l.client.ZIncrBy(ctx, leaderboardKey, float64(points), accountID).Err(); err != nil {
		return fmt.Errorf("leaderboard incr: %w", err)
	}
	return nil
}

// Top returns the highest-scoring accounts, best first, ranks starting at 1.
func (l *Leaderboard) Top(ctx context.Context, limit int64) ([]ports.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard top: %w", err)
	}

	entries := make([]ports.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		member, _ := row.Member.(string)
		entries = append(entries, ports.LeaderboardEntry{
			AccountID: member,
			Score:     int64(row.Score),
			Rank:      int64(i) + 1,
		})
	}
	return entries, nil
}

// Rank returns the entry for one account, or nil when the account has no score yet.
func (l *Leaderboard) Rank(ctx context.Context, accountID string) (*ports.LeaderboardEntry, error) {
	rank, err := l.client.ZRevRank(ctx, leaderboardKey, accountID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leaderboard rank: %w", err)
	}

	score, err := l.client.ZScore(ctx, leaderboardKey, accountID).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard score: %w", err)
	}

	return &ports.LeaderboardEntry{
		AccountID: accountID,
		Score:     int64(score),
		Rank:      rank + 1,
	}, nil
}

func (l *Leaderboard) Remove(ctx context.Context, accountID string) error {
	if err := l.client.ZRem(ctx, leaderboardKey, accountID).Err(); err != nil {
		return fmt.Errorf("leaderboard remove: %w", err)
	}
	return nil
}
