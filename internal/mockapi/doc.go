// Package mockapi provides an in-memory fake of the SEO agent backend for
// local development and integration tests. Run it standalone with the
// seodeck-mock command.
package mockapi
