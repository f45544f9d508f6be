package model

import "math"

// Signal is a confirmed V20 pattern occurrence for one symbol.
// BuyAt/SellAt are the streak low/high, Close is the latest close of the
// symbol's entire series (constant across the symbol's signals), and
// Proximity is the percentage distance of that close from BuyAt.
// The JSON names are the column headers the presentation layer renders.
type Signal struct {
	SignalDate  string  `json:"SignalDate"`
	Symbol      string  `json:"Symbol"`
	BuyAt       float64 `json:"BuyAt"`
	SellAt      float64 `json:"SellAt"`
	PercentMove float64 `json:"%Move"`
	Close       float64 `json:"Close"`
	Proximity   float64 `json:"Proximity%"`
}

// Key identifies a signal across scan runs (used for notification dedupe).
func (s Signal) Key() string {
	return s.Symbol + "|" + s.SignalDate
}

// Round2 rounds a price or percentage to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
