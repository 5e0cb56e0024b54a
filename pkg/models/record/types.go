package record

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minmaxed/dots-and-boxes/pkg/models/message"
)

// GameStart is the mongo document inserted when a match is created.
type GameStart struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid
	Lines     int
	Columns   int
	Depth     int
	Algorithm string
	Policy    string
}

// Move is the mongo document inserted per placement.
type Move struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid
	StepCount int
	Player    string
	Row       int
	Column    int
	MinScore  int
	MaxScore  int
}

// GameEnd is the mongo document inserted when a match finishes.
type GameEnd struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid  message.GameUid
	Winner   string
	MinScore int
	MaxScore int
}
