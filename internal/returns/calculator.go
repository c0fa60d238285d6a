package returns

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// ProgressFunc is invoked after each symbol is processed, successful or not.
// done counts processed symbols so far, total is the batch size, and symbol
// is the one just finished.
type ProgressFunc func(done, total int, symbol string)

// Request carries the inputs of one return calculation.
type Request struct {
	// Symbols are uppercase ticker symbols, processed in order.
	Symbols []string

	// Date is the target calendar date, interpreted in US Eastern.
	// Zero means "today" in Eastern time.
	Date time.Time

	// At is the target bar time. Zero means the current Eastern hour
	// at the half-hour mark.
	At TimeOfDay
}

// ReturnService defines the business logic for computing previous-close
// percentage returns over a batch of symbols.
type ReturnService interface {
	Compute(ctx context.Context, req Request, progress ProgressFunc) (*models.Report, error)
}

type returnService struct {
	provider marketdata.Provider
}

// nowFn is an indirection for the current time; tests can override this.
var nowFn = NowEastern

// NewReturnService creates a ReturnService backed by the given price
// history provider.
func NewReturnService(provider marketdata.Provider) ReturnService {
	return &returnService{provider: provider}
}

// Compute fetches hourly bars for every symbol and derives each symbol's
// percentage return at the target time versus the previous trading day's
// close.
//
// Behavior:
//   - Weekend target dates fail upfront with *InvalidDateError; no symbol
//     is fetched.
//   - Symbols are processed sequentially; any per-symbol failure (provider
//     error, missing bar, empty previous day) skips that symbol and the
//     batch continues.
//   - Records are sorted by return percentage, descending; the sort is
//     stable, so ties keep input order.
func (s *returnService) Compute(ctx context.Context, req Request, progress ProgressFunc) (*models.Report, error) {
	day := req.Date
	if day.IsZero() {
		day = nowFn()
	}
	day = truncateToDate(day.In(eastern))

	at := req.At
	if at == (TimeOfDay{}) {
		at = DefaultTimeOfDay(nowFn())
	}

	if isWeekend(day) {
		return nil, &InvalidDateError{Date: day}
	}
	prevDay := PreviousTradingDay(day)

	logger.L().Info().
		Int("symbols", len(req.Symbols)).
		Str("target_date", day.Format("2006-01-02")).
		Str("target_time", at.String()).
		Str("comparison_day", prevDay.Format("2006-01-02")).
		Msg("returns batch start")

	start := time.Now()
	report := &models.Report{
		Records: make([]models.ReturnRecord, 0, len(req.Symbols)),
	}

	for i, symbol := range req.Symbols {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := s.computeOne(ctx, symbol, day, prevDay, at)
		if err != nil {
			logger.L().Debug().Str("symbol", symbol).Err(err).Msg("symbol skipped")
			report.Skipped = append(report.Skipped, models.SkippedSymbol{Symbol: symbol, Reason: err.Error()})
		} else {
			report.Records = append(report.Records, *rec)
		}

		if progress != nil {
			progress(i+1, len(req.Symbols), symbol)
		}
	}

	sort.SliceStable(report.Records, func(a, b int) bool {
		return report.Records[a].ReturnPct > report.Records[b].ReturnPct
	})

	logger.L().Info().
		Int("rows", len(report.Records)).
		Int("skipped", len(report.Skipped)).
		Dur("elapsed", time.Since(start)).
		Msg("returns batch done")

	return report, nil
}

// computeOne derives one symbol's return record.
//
// The provider is asked for the half-open range [prevDay, day+1) so the
// target date's bars are included. Bars are then partitioned by Eastern
// calendar date: the bar matching the target time-of-day supplies the
// target price, and the chronologically last bar of the comparison day
// approximates its daily close.
func (s *returnService) computeOne(ctx context.Context, symbol string, day, prevDay time.Time, at TimeOfDay) (*models.ReturnRecord, error) {
	bars, err := s.provider.HourlyBars(ctx, symbol, prevDay, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}

	var (
		targetPrice float64
		targetFound bool
		prevClose   float64
		prevTime    time.Time
		prevFound   bool
	)

	for _, b := range bars {
		et := b.Time.In(eastern)
		switch {
		case sameDate(et, day):
			if !targetFound && at.matches(et) {
				targetPrice = b.Close
				targetFound = true
			}
		case sameDate(et, prevDay):
			if !prevFound || b.Time.After(prevTime) {
				prevClose = b.Close
				prevTime = b.Time
				prevFound = true
			}
		}
	}

	if !targetFound {
		return nil, fmt.Errorf("no %s bar on %s", at, day.Format("2006-01-02"))
	}
	if !prevFound {
		return nil, fmt.Errorf("no bars on comparison day %s", prevDay.Format("2006-01-02"))
	}
	if prevClose == 0 {
		return nil, fmt.Errorf("comparison close is zero")
	}

	pct := (targetPrice - prevClose) / prevClose * 100

	return &models.ReturnRecord{
		Symbol:    symbol,
		PrevClose: round2(prevClose),
		Price:     round2(targetPrice),
		ReturnPct: round2(pct),
	}, nil
}
