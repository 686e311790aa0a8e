package catalog

import "errors"

var (
	ErrTourNotFound   = errors.New("tour not found")
	ErrInvalidTier    = errors.New("invalid tier")
	ErrTierOverlap    = errors.New("tier ranges overlap")
	ErrTierGap        = errors.New("tier ranges leave a gap")
	ErrInvalidSeason  = errors.New("invalid season")
	ErrEmptyTierTable = errors.New("tier table is empty")
	ErrAddonExists    = errors.New("addon code already exists")
	ErrAddonNotFound  = errors.New("addon not found")
	ErrInvalidAddon   = errors.New("invalid addon")
	ErrInternal       = errors.New("internal error")
)
