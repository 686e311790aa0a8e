package domain

import "github.com/yydtours/YYD-BookingService/pkg/money"

// PriceQuote is the server-authoritative price computation result.
// It is never persisted on its own: it is recomputed at quote time and
// again at booking-confirmation time, and the two must agree exactly.
type PriceQuote struct {
	Season      Season
	TierLabel   string
	BasePrice   money.Cents
	AddonsTotal money.Cents
	Total       money.Cents
}

// QuotedAddon is one priced add-on line inside a quote
type QuotedAddon struct {
	Code  string
	Total money.Cents
}
