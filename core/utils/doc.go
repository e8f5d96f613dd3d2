// Package utils provides common utility functions for snapshot-manager.
// It includes helpers for cell-value coercion shared by the CSV reader
// and tests, and other small logic that doesn't fit into domain-specific
// packages.
package utils
