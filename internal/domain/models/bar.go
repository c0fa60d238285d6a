package models

import "time"

// Bar represents a single hourly OHLCV observation returned by a
// market-data provider.
//
// Fields:
//   - Time: timezone-aware timestamp of the bar's opening instant. For US
//     equities the provider anchors hourly bars at the half-hour mark
//     (09:30, 10:30, ... in US Eastern time).
//   - Open/High/Low/Close: prices for the interval. Only Close is consumed
//     by the return calculation; the remaining fields are kept so providers
//     can share one bar shape.
//   - Volume: traded volume for the interval.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
