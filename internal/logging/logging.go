// Package logging provides the structured logger used across the
// conversion pipeline: stdlib log output plus optional Sentry breadcrumb/
// event forwarding when a DSN has been configured.
package logging

import (
	"fmt"
	"log"

	"github.com/getsentry/sentry-go"
)

// Fields represents structured log fields attached to one log line.
type Fields map[string]interface{}

// WithJob seeds the fields every log line for one conversion job should
// carry, mirroring the role the teacher's WithContext played for one
// HTTP request.
func WithJob(lcscID string) Fields {
	return Fields{"lcsc_id": lcscID}
}

// Info logs an informational message and records a Sentry breadcrumb.
func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %s", msg, formatFields(fields))

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		sentry.AddBreadcrumb(&sentry.Breadcrumb{
			Type:     "info",
			Category: "log",
			Message:  msg,
			Data:     convertFieldsToMap(fields),
			Level:    sentry.LevelInfo,
		})
	}
}

// Warn logs a warning message and records a Sentry breadcrumb.
func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %s", msg, formatFields(fields))

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		sentry.AddBreadcrumb(&sentry.Breadcrumb{
			Type:     "warning",
			Category: "log",
			Message:  msg,
			Data:     convertFieldsToMap(fields),
			Level:    sentry.LevelWarning,
		})
	}
}

// Debug logs a debug message and records a Sentry breadcrumb.
func Debug(msg string, fields Fields) {
	log.Printf("[DEBUG] %s %s", msg, formatFields(fields))

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		sentry.AddBreadcrumb(&sentry.Breadcrumb{
			Type:     "debug",
			Category: "log",
			Message:  msg,
			Data:     convertFieldsToMap(fields),
			Level:    sentry.LevelDebug,
		})
	}
}

// Error logs an error message with its cause and captures it in Sentry.
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %s", msg, err, formatFields(fields))

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for key, value := range fields {
				scope.SetContext(key, map[string]interface{}{"value": value})
			}
			if lcscID, ok := fields["lcsc_id"].(string); ok {
				scope.SetTag("lcsc_id", lcscID)
			}
			hub.CaptureException(err)
		})
	}
}

func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	result := "{"
	first := true
	for k, v := range fields {
		if !first {
			result += ", "
		}
		result += fmt.Sprintf("%s=%v", k, v)
		first = false
	}
	result += "}"
	return result
}

func convertFieldsToMap(fields Fields) map[string]interface{} {
	result := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		result[k] = v
	}
	return result
}
