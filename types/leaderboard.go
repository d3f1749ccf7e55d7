package types

type LeaderboardEntry struct {
	Rank     int64  `json:"rank"`
	UserID   int64  `json:"user_id,string"`
	Username string `json:"username"`
	XP       int64  `json:"xp"`
	Level    int    `json:"level"`
}

type LeaderboardResponse struct {
	Items  []LeaderboardEntry `json:"items"`
	MyRank int64              `json:"my_rank"`
	Source string             `json:"source"` // redis | db
}
