package fakeapi

import (
	"errors"
	"net/http"
)

var (
	errUserIDRequired  = errors.New("userId is required")
	errInvalidDate     = errors.New("date must be YYYY-MM-DD")
	errInvalidStart    = errors.New("start must be HH:MM (24-hour)")
	errInvalidEnd      = errors.New("end must be HH:MM (24-hour)")
	errEndBeforeStart  = errors.New("end time must be after start time")
	errLabelRequired   = errors.New("label is required")
	errLabelTooLong    = errors.New("label must be 120 characters or fewer")
	errBlockIDRequired = errors.New("blockId is required")
	errOverlap         = errors.New("Time overlaps with existing block")
	errBlockNotFound   = errors.New("Block not found")
	errInvalidJSON     = errors.New("Invalid JSON body")
)

var errorStatusMap = map[error]int{
	errUserIDRequired:  http.StatusBadRequest,
	errInvalidDate:     http.StatusBadRequest,
	errInvalidStart:    http.StatusBadRequest,
	errInvalidEnd:      http.StatusBadRequest,
	errEndBeforeStart:  http.StatusBadRequest,
	errLabelRequired:   http.StatusBadRequest,
	errLabelTooLong:    http.StatusBadRequest,
	errBlockIDRequired: http.StatusBadRequest,
	errOverlap:         http.StatusBadRequest,
	errInvalidJSON:     http.StatusBadRequest,
	errBlockNotFound:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
