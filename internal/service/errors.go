package service

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
	// ErrNotOwner is returned when a mutation is attempted by an actor whose
	// id does not match the record's owner id.
	ErrNotOwner = errors.New("not authorized to modify this post")
)
