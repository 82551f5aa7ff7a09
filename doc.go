// Package tharwa provides the core types and rules of a single-user,
// in-process investment tracker. It is deliberately local-only: the
// portfolio lives in memory for the lifetime of the process and is
// discarded on exit.
//
// The core functionalities include:
//   - Portfolio: an ordered, snapshot-isolated store of purchased
//     assets, supporting add, remove-by-name and listing.
//   - Zakat: the standard 2.5% levy computed over the purchase price
//     of eligible (non-crypto) holdings.
//   - Users and sessions: an in-memory registry with bcrypt-hashed
//     credentials, and the session value opened by a successful login.
//   - Reports: point-in-time summaries of the portfolio, ready to be
//     rendered by the renderer package.
//
// This package serves as the foundational logic for the `tharwa`
// command-line tool; validation of user input belongs to the command
// layer, which never hands an invalid asset to the store.
package tharwa
