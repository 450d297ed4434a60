package domain

import "errors"

var (
	ErrUnknownWindow = errors.New("unknown traffic window")
	ErrUnknownField  = errors.New("unknown categorical field")
	ErrNegativeCost  = errors.New("cost must not be negative")
	ErrEmptyDataset  = errors.New("dataset has no records")
)
