package models

// ReturnRecord is one row of the result table: the percentage change of a
// symbol's price at the target time relative to the previous trading day's
// closing price.
//
// All numeric fields are rounded to 2 decimal places by the calculator;
// a record is immutable after creation.
//
// swagger:model ReturnRecord
type ReturnRecord struct {
	Symbol    string  `json:"symbol" example:"AAPL"`
	PrevClose float64 `json:"previous_close" example:"100.00"`
	Price     float64 `json:"target_price" example:"105.00"`
	ReturnPct float64 `json:"return_pct" example:"5.00"`
}

// SkippedSymbol records a symbol that produced no ReturnRecord and why.
// Skips are a normal outcome of the best-effort batch policy (provider
// failure, missing bars, holiday on the comparison day); they are logged
// and counted but never abort the batch.
type SkippedSymbol struct {
	Symbol string `json:"symbol" example:"MSFT"`
	Reason string `json:"reason" example:"no bars for previous trading day"`
}

// Report is the outcome of one calculation batch.
//
// Records is sorted descending by ReturnPct; ties keep the input order.
// An empty Records with a non-empty input means every symbol was skipped
// ("no results"), which callers must distinguish from "still processing".
type Report struct {
	Records []ReturnRecord
	Skipped []SkippedSymbol
}

// Summary holds descriptive statistics over the ReturnPct column of a
// non-empty result table. Each value is rounded to 2 decimal places.
//
// swagger:model Summary
type Summary struct {
	Mean   float64 `json:"mean" example:"1.25"`
	Median float64 `json:"median" example:"0.80"`
	Best   float64 `json:"best" example:"5.00"`
	Worst  float64 `json:"worst" example:"-2.10"`
}
