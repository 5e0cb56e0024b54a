package types

type CreateGameRequest struct {
	Lines     int    `json:"lines"`
	Columns   int    `json:"columns"`
	Depth     int    `json:"depth,optional"`
	Algorithm string `json:"algorithm,optional"`
	Policy    string `json:"policy,optional"`
}

type GamePathRequest struct {
	GameUid string `path:"uid"`
}

type ApplyMoveRequest struct {
	GameUid string `path:"uid"`
	Row     int    `json:"row"`
	Column  int    `json:"column"`
}

type BestEdgeRequest struct {
	GameUid string `path:"uid"`
	Apply   bool   `json:"apply,optional"`
}

// OwnedBox names a completed box by its upper-left corner and its owner.
type OwnedBox struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Owner  string `json:"owner"`
}

// GameStateResponse reports segments in dot-lattice coordinates, where a
// segment address has exactly one odd coordinate.
type GameStateResponse struct {
	GameUid   string     `json:"gameUid"`
	Lines     int        `json:"lines"`
	Columns   int        `json:"columns"`
	MinScore  int        `json:"minScore"`
	MaxScore  int        `json:"maxScore"`
	NowPlayer string     `json:"nowPlayer"`
	StepCount int        `json:"stepCount"`
	Segments  [][2]int   `json:"segments"`
	Boxes     []OwnedBox `json:"boxes"`
	Outcome   string     `json:"outcome"`
}

type BestEdgeResponse struct {
	Row     int                `json:"row"`
	Column  int                `json:"column"`
	Score   int                `json:"score"`
	Visited int                `json:"visited"`
	State   *GameStateResponse `json:"state,omitempty"`
}
