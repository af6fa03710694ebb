// Package config loads seodeck's configuration.
//
// Settings come from ~/.config/seodeck/config.toml (api_url, poll_seconds,
// settle_ms, timeout_seconds, log_file). A missing file is not an error;
// every field has a default. SEODECK_API_URL (or the legacy
// NEXT_PUBLIC_API_URL) in the environment beats the file, and trailing
// slashes are stripped from the API URL before use.
package config
