package mail

import (
	"context"
	"crmdigest/internal/models"
	"crmdigest/internal/structures"
	"crmdigest/internal/testutil"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmtpTransport_NoRecipients(t *testing.T) {
	tr := NewSmtpTransport(&structures.Config{Mail: structures.MailConfig{Host: "localhost", Port: 25}}, &testutil.MockLogger{})

	err := tr.Send(context.Background(), "subject", "<p>hi</p>", nil)
	assert.ErrorIs(t, err, models.ErrNoRecipients)
}

func TestSmtpTransport_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	logger := &testutil.MockLogger{}
	tr := NewSmtpTransport(&structures.Config{Mail: structures.MailConfig{
		Host: "127.0.0.1",
		Port: port,
		From: "digest@example.com",
	}}, logger)

	err = tr.Send(context.Background(), "subject", "<p>hi</p>", []string{"team@example.com"})
	require.Error(t, err)
	require.Len(t, logger.Logs, 1)
	assert.Equal(t, "error", logger.Logs[0].Level)
}
