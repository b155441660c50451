// Package calculator holds the pure arithmetic behind splitting and
// settling: parsing entered amounts, halving a shared total, and
// aggregating payments into per-friend balances.
package calculator
