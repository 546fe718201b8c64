// Package gorm provides the GORM-backed implementations of the store
// interfaces.
package gorm
