package domain

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomClosed      = errors.New("room is already closed")
	ErrRoomOpen        = errors.New("room is still open")
	ErrInvalidToken    = errors.New("invalid room token")
	ErrInvalidRoomID   = errors.New("invalid room id")
	ErrTokenConflict   = errors.New("room token already exists")
	ErrCatalogEmpty    = errors.New("food catalog is empty")
	ErrInvalidCategory = errors.New("invalid food category")
	ErrInternal        = errors.New("internal server error")
)
