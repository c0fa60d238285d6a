package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/middleware"
	"github.com/guttosm/stockpulse/internal/returns"
)

// Handler provides HTTP handlers for the return-calculation endpoints.
//
// Responsibilities:
//   - Validate and normalize incoming parameters (symbols, date, time)
//   - Drive the calculator service
//   - Translate results into response DTOs with appropriate status codes
type Handler struct {
	svc returns.ReturnService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (returns.ReturnService): Calculator dependency.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc returns.ReturnService) *Handler {
	return &Handler{svc: svc}
}

// parseRequest normalizes the raw inputs shared by all three endpoints.
// Empty date and time default to "today" and the current hour at :30, both
// in US Eastern, so the response can echo the effective values back.
func parseRequest(symbolsRaw, dateStr, timeStr string) (returns.Request, error) {
	req := returns.Request{Symbols: returns.ParseSymbolList(symbolsRaw)}

	now := returns.NowEastern()
	if dateStr == "" {
		req.Date = now
	} else {
		d, err := time.ParseInLocation("2006-01-02", dateStr, returns.Eastern())
		if err != nil {
			return returns.Request{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
		}
		req.Date = d
	}

	if timeStr == "" {
		req.At = returns.DefaultTimeOfDay(now)
	} else {
		at, err := returns.ParseTimeOfDay(timeStr)
		if err != nil {
			return returns.Request{}, err
		}
		req.At = at
	}

	return req, nil
}

func buildResponse(req returns.Request, report *models.Report) dto.ReturnsResponse {
	return dto.ReturnsResponse{
		Date:    req.Date.Format("2006-01-02"),
		Time:    req.At.String(),
		Count:   len(report.Records),
		Skipped: len(report.Skipped),
		Rows:    report.Records,
		Summary: returns.Summarize(report.Records),
	}
}

// ComputeReturns handles POST /api/v1/returns requests.
//
// ComputeReturns godoc
// @Summary      Compute previous-close returns
// @Description  Computes each symbol's percentage return at the target time versus the previous trading day's close. Rows are sorted by return, descending; symbols the provider cannot price are skipped.
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ReturnsRequest  true  "Symbol list with optional target date (YYYY-MM-DD) and time (HH:30)"
// @Success      200      {object}  dto.ReturnsResponse  "Success (count 0 means no symbol produced a row)"
// @Failure      400      {object}  dto.ErrorResponse    "Bad Request (weekend date, malformed date or time)"
// @Failure      500      {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/returns [post]
func (h *Handler) ComputeReturns(c *gin.Context) {
	// ─── Bind and normalize the request ───────────────────────
	var body dto.ReturnsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req, err := parseRequest(body.Symbols, body.Date, body.Time)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// ─── Run the batch (with request context) ──────────────────
	report, err := h.svc.Compute(c.Request.Context(), req, nil)
	if err != nil {
		h.abortComputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildResponse(req, report))
}

// ExportCSV handles GET /api/v1/returns/csv requests.
//
// ExportCSV godoc
// @Summary      Export returns as CSV
// @Description  Runs the same calculation as POST /api/v1/returns and streams the result table as a CSV attachment named stock_returns.csv.
// @Tags         returns
// @Produce      text/csv
// @Param        symbols  query     string  true   "Symbols, comma- or newline-delimited"  example(AAPL,MSFT)
// @Param        date     query     string  false  "Target date in YYYY-MM-DD"             example(2024-12-17)
// @Param        time     query     string  false  "Target time, HH:30"                    example(10:30)
// @Success      200      {string}  string             "CSV payload"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/returns/csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	req, err := parseRequest(c.Query("symbols"), c.Query("date"), c.Query("time"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	report, err := h.svc.Compute(c.Request.Context(), req, nil)
	if err != nil {
		h.abortComputeError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", returns.CSVFilename))
	if err := returns.WriteCSV(c.Writer, report.Records); err != nil {
		_ = c.Error(err)
	}
}

// StreamReturns handles GET /api/v1/returns/stream requests.
//
// The calculation runs in a producer goroutine while the handler relays
// per-symbol progress as SSE "progress" events. The final table arrives as
// one "result" event; failures arrive as an "error" event, since an
// EventSource client cannot observe HTTP status codes after the stream
// starts.
//
// StreamReturns godoc
// @Summary      Compute returns with live progress
// @Description  Server-sent events stream: one "progress" event per processed symbol, then a single "result" event carrying the same payload as POST /api/v1/returns, or an "error" event.
// @Tags         returns
// @Produce      text/event-stream
// @Param        symbols  query     string  true   "Symbols, comma- or newline-delimited"  example(AAPL,MSFT)
// @Param        date     query     string  false  "Target date in YYYY-MM-DD"             example(2024-12-17)
// @Param        time     query     string  false  "Target time, HH:30"                    example(10:30)
// @Success      200      {string}  string  "SSE stream"
// @Router       /api/v1/returns/stream [get]
func (h *Handler) StreamReturns(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	req, err := parseRequest(c.Query("symbols"), c.Query("date"), c.Query("time"))
	if err != nil {
		c.SSEvent("error", gin.H{"message": err.Error()})
		c.Writer.Flush()
		return
	}

	events := make(chan dto.ProgressEvent, 8)
	var report *models.Report

	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		defer close(events)
		rep, err := h.svc.Compute(gctx, req, func(done, total int, symbol string) {
			select {
			case events <- dto.ProgressEvent{Done: done, Total: total, Symbol: symbol}:
			case <-gctx.Done():
			}
		})
		if err != nil {
			return err
		}
		report = rep
		return nil
	})

	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent("progress", ev)
		return true
	})

	if err := g.Wait(); err != nil {
		var invalid *returns.InvalidDateError
		if errors.As(err, &invalid) {
			c.SSEvent("error", gin.H{"message": invalid.Error()})
		} else {
			c.SSEvent("error", gin.H{"message": "calculation failed"})
			_ = c.Error(err)
		}
		c.Writer.Flush()
		return
	}

	c.SSEvent("result", buildResponse(req, report))
	c.Writer.Flush()
}

// abortComputeError maps calculator failures to HTTP responses: weekend
// dates are a caller mistake (400), anything else is internal (500).
func (h *Handler) abortComputeError(c *gin.Context, err error) {
	var invalid *returns.InvalidDateError
	if errors.As(err, &invalid) {
		middleware.AbortWithError(c, http.StatusBadRequest, invalid.Error(), nil)
		return
	}
	middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute returns", err)
}
