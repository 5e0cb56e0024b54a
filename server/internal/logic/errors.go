package logic

import "errors"

var (
	ErrGameNotFound = errors.New("game not found or expired")
	ErrGameOver     = errors.New("game is already over")
	ErrEngineTurn   = errors.New("the engine moves next")
)
