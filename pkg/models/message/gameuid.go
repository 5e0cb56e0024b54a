package message

import "github.com/google/uuid"

// GameUid identifies one match across the journal, the redis cache and the
// mongo records.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}
