package ports

import "context"

// LeaderboardEntry is one ranked row: account id, cumulative points, 1-based rank.
type LeaderboardEntry struct {
	AccountID string
	Score     int64
	Rank      int64
}

// Leaderboard ranks accounts by cumulative quiz points.
type Leaderboard interface {
	AddScore(ctx context.Context, accountID string, points int64) error
	Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error)
	Rank(ctx context.Context, accountID string) (*LeaderboardEntry, error)
	Remove(ctx context.Context, accountID string) error
}
