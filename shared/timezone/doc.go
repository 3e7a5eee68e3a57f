// Package timezone keeps the application timezone, configured through APP_TIMEZONE.
//
// The location is loaded once at import time from the service configuration. Use standard
// IANA names ("UTC", "Asia/Kolkata", "Europe/London"); anything unknown falls back to UTC.
//
//	now := timezone.Now()
//	formatted := timezone.Format(createdAt, time.RFC3339)
package timezone
