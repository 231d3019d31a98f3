package utils_test

import (
	"bytes"
	"log"
	"os"
	"testing"

	"vesta/config"
	"vesta/utils"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestNotifyFallsBackToLogWithoutApiKey(t *testing.T) {
	config.AppConfig = &config.Config{}
	buf := captureLog(t)

	utils.Notify("user@test.local", "Withdrawal rejected", "The amount has been returned to your wallet.", utils.SeverityDestructive)

	assert.Contains(t, buf.String(), "(destructive)")
	assert.Contains(t, buf.String(), "Withdrawal rejected")
}

func TestNotifyLogsInfoSeverity(t *testing.T) {
	config.AppConfig = &config.Config{}
	buf := captureLog(t)

	utils.Notify("user@test.local", "Account activated", "Your account has been activated.", utils.SeverityInfo)

	assert.Contains(t, buf.String(), "(info)")
}
