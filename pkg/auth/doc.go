// Package auth issues and verifies the HS256 API tokens signed with
// the application SECRET_KEY.
package auth
