package service

import "errors"

var (
	ErrReadingUserID    = errors.New("error reading user id from local storage")
	ErrPersistingUserID = errors.New("error saving user id to local storage")
)
