// Package tableio loads tables from files and writes them back as delimited
// text.
//
// Supported sources, chosen by file extension:
//   - .xlsx: spreadsheet workbook; first (or named) sheet; row 0 is the header
//   - .sqlite, .sqlite3, .db: SQLite database opened read-only; first (or named) table
//   - anything else: delimited text with a configurable delimiter and header flag
//
// Text cells are typed per column by table.FromText unless Source.Raw is set.
// Output is always delimited text.
package tableio
