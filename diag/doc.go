// Package diag implements the diagnostics sink described in spec.md §6/§7:
// structured errors carrying a span, a severity level, and a message,
// collected into a Set rather than printed. The builder proceeds as far as
// safely possible so a single compilation can surface more than one
// diagnostic (spec.md §9 "Diagnostics as values, not control flow").
package diag
