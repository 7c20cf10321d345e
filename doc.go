// Package radar provides the domain types and pure computations behind
// the Radar personal investment-portfolio tracker. The actual portfolio
// lives on a remote backend keyed by the user's phone number; this
// package knows how to:
//
//   - Phone Identity: canonicalize free-form user-typed phone numbers
//     into the +7XXXXXXXXXX identifier the backend uses as the sole
//     account lookup key, and mask it back for display.
//   - Holdings: fold the several holding shapes the backend has shipped
//     over time (aliased quantity keys, positions vs holdings arrays)
//     into one canonical record at the decoding boundary.
//   - Valuation: reduce an account's holdings into display totals and a
//     per-type breakdown, deferring to the backend's precomputed
//     portfolio value when it supplies one.
//   - Payment Calendar: coupon, redemption and offer events grouped by
//     day for the calendar view.
//
// Every computation here is stateless: accounts and holdings are
// ephemeral view-models reconstructed on every fetch, never cached or
// mutated locally. This package serves as the foundational logic for
// the `radar` command-line tool; the HTTP calls live in the radarapi
// package.
package radar
