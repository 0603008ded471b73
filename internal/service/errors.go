package service

import "github.com/go-faster/errors"

var (
	ErrEmptyOrder = errors.New("order is empty, nothing to checkout")
)
