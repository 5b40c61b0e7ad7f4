// Package table provides the in-memory tabular model shared by the extractor.
//
// This package contains the data model only. Every other internal package
// imports table; table imports nothing internal.
//
// Key design constraints:
//   - Tables are immutable once built; operations return new tables
//   - Column names are unique within one table
//   - Values are a sealed set of comparable kinds so they can key maps
//   - Column references carry an explicit kind (by name or by index)
package table
