package marketdata

import (
	"context"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// Provider defines the contract the return calculator assumes of a price
// history source.
//
// HourlyBars returns one-hour OHLC bars for the half-open range
// [start, end). Implementations return an error (or an empty slice) on
// unknown symbols, missing data, or transport failures; the caller treats
// any of those as "skip this symbol".
type Provider interface {
	HourlyBars(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error)
	Ping(ctx context.Context) error
	Name() string
}
