// Package model holds the database models for the framework-provided
// auth tables (auth_user, auth_session).
package model
