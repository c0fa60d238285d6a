package dto

import "github.com/guttosm/stockpulse/internal/domain/models"

// ReturnsRequest is the JSON body accepted by POST /api/v1/returns.
//
// Symbols carries the raw symbol list exactly as typed into the UI:
// newline- and/or comma-delimited, any case, duplicates allowed. The server
// trims, uppercases and de-duplicates it (first occurrence wins) before
// calling the calculator.
//
// Date ("YYYY-MM-DD") and Time ("HH:30") are optional; when empty they
// default to the current date and the half-hour mark of the current hour in
// US Eastern time.
type ReturnsRequest struct {
	Symbols string `json:"symbols" example:"AAPL\nMSFT\nGOOGL"`
	Date    string `json:"date,omitempty" example:"2024-12-17"`
	Time    string `json:"time,omitempty" example:"10:30"`
}

// ReturnsResponse is the JSON structure returned by the returns endpoints.
//
// Rows is sorted descending by return_pct. Count == 0 with a 200 status is
// the explicit "no results" signal: the batch ran to completion but every
// symbol was skipped (or the input was empty).
//
// swagger:model ReturnsResponse
type ReturnsResponse struct {
	Date    string                `json:"date" example:"2024-12-17"`
	Time    string                `json:"time" example:"10:30"`
	Count   int                   `json:"count" example:"2"`
	Skipped int                   `json:"skipped" example:"1"`
	Rows    []models.ReturnRecord `json:"rows"`
	Summary *models.Summary       `json:"summary,omitempty"`
}

// ProgressEvent is the payload of one SSE "progress" event emitted by
// GET /api/v1/returns/stream after each processed symbol.
type ProgressEvent struct {
	Done   int    `json:"done" example:"3"`
	Total  int    `json:"total" example:"25"`
	Symbol string `json:"symbol" example:"NVDA"`
}
