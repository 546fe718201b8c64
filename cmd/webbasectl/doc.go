// Package main provides webbasectl, the management command for a
// webbase project.
//
// webbase is a batteries-included starting point for a PostgreSQL-backed
// web service: a settings loader, database migrations, session and token
// authentication, and an HTTP server with a default URL table.
//
// # Architecture
//
// The project is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: HTTP endpoint handlers
//   - pkg/server/middleware: host checking and authentication middleware
//   - pkg/auth: bearer token signing and verification
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: settings management
//
// # Quick Start
//
// The server is run via the webbasectl CLI:
//
//	# Generate a secret key
//	export SECRET_KEY=$(webbasectl secret-key generate)
//
//	# Run database migrations
//	webbasectl db migrate
//
//	# Create an administrator
//	webbasectl superuser create --username admin --email admin@example.com
//
//	# Start the server
//	webbasectl server
//
// # Environment Variables
//
//   - SECRET_KEY: Key used to sign auth tokens
//   - DEBUG: Enable debug behaviour (default: false)
//   - ALLOWED_HOSTS: Comma-separated list of served host names
//   - DATABASE_URL: PostgreSQL connection string
//   - POSTGRES_DB, POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_HOST,
//     POSTGRES_PORT: database settings used when DATABASE_URL is unset
//   - PORT: Server port (default: 9000)
//
// Run `webbasectl settings show` for the full list.
package main
