// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller owns the application state (user id and selected date)
// and reconciles the view with the remote API.
//
// Every mutating action follows the same flow: validate locally, call the
// API, and on failure report the error to the user and the diagnostics
// panel and stop; on success replace the table with the server's list and
// resynchronise the month calendar. Blocks are never patched locally.
package controller

import (
	"github.com/MKhiriev/go-block-calendar/internal/view"
	"github.com/MKhiriev/go-block-calendar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/controller_view_mock.go -package=mock

// View is the user interface driven by the [Controller]. Implementations
// must be safe for concurrent use.
type View interface {
	RenderTable(t view.Table)
	// ShowMessage sets the status line. isError marks it as a failure.
	ShowMessage(msg string, isError bool)
	// SetDebug replaces the diagnostics panel.
	SetDebug(text string)
	SetDateField(date string)
	SetTitle(title string)
	// HighlightDate marks date as selected. origin is the grid cell the user
	// picked, or nil when the selection came from elsewhere.
	HighlightDate(date string, origin *models.GridCell)
	ReadForm() models.FormValues
}
