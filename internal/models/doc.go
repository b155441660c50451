// Package models defines the core domain models for Splitwise.
//
// # Models
//
//   - User: a friend the user shares expenses with, identified by name
//   - Payment: one signed amount recorded against a friend
//   - Balance: the net of all payments for one friend (derived, never stored)
//
// Sign convention: a positive amount means the friend owes the user,
// a negative amount means the user owes the friend.
//
// # Design Principles
//
// 1. **Names are identity**: users are created on first reference by name
// 2. **Append-only ledger**: payments are never mutated or deleted, settling
// up records a new negative payment
// 3. **Derived balances**: balances are recomputed from payments after every
// write instead of being maintained incrementally
package models
