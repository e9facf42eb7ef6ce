package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ForComponent creates a logger tagged with the emitting component
func ForComponent(name string) *Logger {
	return New().WithField("component", name)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// WithDocument tags the lineage being operated on
func (l *Logger) WithDocument(documentID string, version int) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(logrus.Fields{
			"document_id": documentID,
			"version":     version,
		}),
	}
}

// WithTeam tags the team being operated on
func (l *Logger) WithTeam(teamID string) *Logger {
	return &Logger{
		Entry: l.Entry.WithField("team_id", teamID),
	}
}
