// Package carteira provides the types and functions for tracking a personal
// investment portfolio. It is designed to be local-first: all state lives in
// a single snapshot persisted as one JSON blob, and every value shown to the
// user is derived from that snapshot.
//
// The core functionalities include:
//   - Data Model: assets (stocks and REIT-like funds) with their buy/sell
//     transactions and distribution payments, a cash-movement ledger, and a
//     target-allocation configuration.
//   - Derivation Engine: pure functions computing quantity, average cost,
//     invested capital, current value, return and distribution yield, applied
//     consistently after every mutation, plus portfolio-level aggregates and
//     contribution suggestions.
//   - Mutation Dispatcher: a fixed set of copy-on-write operations on the
//     snapshot; the input snapshot is never mutated in place.
//   - Data Persistence: encoding and decoding of the snapshot to and from a
//     stable JSON format, including a timestamped export/import envelope.
//
// This package serves as the foundational logic for the `cart` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package carteira
