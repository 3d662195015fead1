package logic

import (
	"errors"
	"time"
)

var ErrInvalidRequest = errors.New("invalid request")

const (
	defaultTokenTTL  = 24 * time.Hour
	maxFavoritesSize = 100
	maxBatchIDs      = 500
	maxFilterLimit   = 500
)
