package model

import "time"

type LeaderboardAction string

const (
	LeaderboardActionResponded LeaderboardAction = "responded"
)

type LeaderboardActivity struct {
	ID        int64
	UserID    int64
	IssueID   int64
	CommentID *int64
	Action    LeaderboardAction
	CreatedAt time.Time
}

type LeaderboardEntry struct {
	UserID        int64
	UserName      string
	TeamName      *string
	ResponseCount int64
}
