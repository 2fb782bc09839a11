// Package integration runs the service against real Postgres and Redis
// containers (dockertest). Run with: go test -tags integration_test ./internal/integration/...
package integration
