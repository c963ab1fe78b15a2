package client_test

import (
	"bytes"
	"log"
	"os"
	"testing"

	"hospitality/client"

	"github.com/stretchr/testify/assert"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	var n client.LogNotifier
	n.Success("Booking updated successfully")
	n.Error("Booking not found")

	assert.Contains(t, buf.String(), "ok: Booking updated successfully")
	assert.Contains(t, buf.String(), "error: Booking not found")
}
