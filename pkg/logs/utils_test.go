package logs

import (
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func Test_newLoggerWithLevel(t *testing.T) {
	logger := NewLoggerWithLevel("paced-loop", log.DebugLevel)

	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("logger level is %v, want debug", logger.GetLevel())
		t.FailNow()
	}
	if !logger.IsLevelEnabled(log.DebugLevel) {
		t.Error("debug entries are not enabled")
		t.FailNow()
	}

	quiet := NewLoggerWithLevel("paced-loop", log.WarnLevel)
	if quiet.IsLevelEnabled(log.InfoLevel) {
		t.Error("warn-level logger still emits info entries")
		t.FailNow()
	}
}

func Test_ownerPrefixedMessages(t *testing.T) {
	logger := NewLogger("clock")

	entry := &log.Entry{
		Logger:  logger,
		Data:    log.Fields{},
		Time:    time.Now(),
		Level:   log.InfoLevel,
		Message: "tick",
	}
	out, err := logger.Formatter.Format(entry)
	if err != nil {
		t.Errorf("formatting failed: %v", err)
		t.FailNow()
	}
	if !strings.Contains(string(out), "[clock] tick") {
		t.Errorf("formatted entry %q does not carry the owner prefix", string(out))
		t.FailNow()
	}
}
