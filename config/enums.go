package config

//go:generate go tool go-enum --marshal --nocase

// Specification of requested footnote list rendering mode.
// ENUM(list, collapsed)
type FootnotesMode int
