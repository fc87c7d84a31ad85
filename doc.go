// Package finpension converts Finpension transaction reports into Parqet
// activity tables.
//
// Finpension exports a semicolon-separated CSV of pension portfolio
// movements (buys, sells, dividends, cash transfers). Parqet imports
// activities from its own CSV dialect and, when a cash account is tracked,
// expects every securities trade and dividend to be balanced by a matching
// cash movement. This package bridges the two:
//
//   - Decoding: reading the Finpension report into raw records
//     (DecodeReport), no type inference, dates passed through untouched.
//   - Classification: mapping the report's Category to a Parqet activity
//     type (Classify), with the Transfer direction decided by the cash-flow
//     sign.
//   - Expansion: turning each record into one or two activities (Expand),
//     synthesizing the cash funding leg that keeps the Parqet cash account
//     balanced.
//   - Partition: splitting the expanded activities into the securities
//     table and the cash table (Partition, Report.Convert).
//   - Encoding: writing tables in the Parqet dialect (EncodeActivities),
//     semicolon separated, comma decimal mark, five fractional digits.
//
// The package is stateless and does no I/O beyond the readers and writers
// handed to it. The `pfi` command-line tool is built on top of it.
package finpension
