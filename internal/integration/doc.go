// Package integration holds end-to-end tests that exercise the client
// against the real Slides and Drive APIs.
//
// These tests are skipped unless the INTEGRATION_TEST environment variable
// is set:
//
//	INTEGRATION_TEST=1 go test -v ./internal/integration/...
//
// Required environment variables:
//
//   - INTEGRATION_TEST: set to "1" to enable
//   - GOOGLE_CLIENT_ID: OAuth2 client ID
//   - GOOGLE_CLIENT_SECRET: OAuth2 client secret
//   - GOOGLE_REFRESH_TOKEN: valid refresh token for the test account
//
// Presentations created during a test run are deleted on test cleanup.
package integration
