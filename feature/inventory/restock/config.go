package restock

// Config holds configuration for invoice restocking.
type Config struct {
	// Prefix is the bucket folder holding line item files.
	Prefix string `mapstructure:"prefix" default:"invoices"`
	// RatePerSecond caps store writes while applying a plan.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"20"`
	// Burst is the number of writes allowed back to back.
	Burst int `mapstructure:"burst" default:"5"`
}
