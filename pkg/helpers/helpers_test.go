package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-mongo-shop/pkg/mailer"
)

func TestEnsureRecipientAndEmail(t *testing.T) {
	job := mailer.EmailJob{To: "a@x.io"}
	EnsureRecipientAndEmail(&job)
	assert.Equal(t, "a@x.io", job.Data["Email"])
	assert.Equal(t, "a@x.io", job.Data["RecipientEmail"])

	job = mailer.EmailJob{To: "a@x.io", Data: map[string]any{"Email": "b@x.io"}}
	EnsureRecipientAndEmail(&job)
	assert.Equal(t, "b@x.io", job.Data["Email"])
}

func TestFillTimeText(t *testing.T) {
	data := map[string]any{"TimeAt": "2024-03-01T09:30:00Z"}
	FillTimeText(data)
	assert.Equal(t, "01 March 2024, 09:30", data["Time"])

	data = map[string]any{"TimeAt": "2024-03-01T09:30:00Z", "Time": "already"}
	FillTimeText(data)
	assert.Equal(t, "already", data["Time"])

	data = map[string]any{"TimeAt": "garbage"}
	FillTimeText(data)
	assert.NotContains(t, data, "Time")
}

func TestRabbitPublisherNilIsNoop(t *testing.T) {
	var p *RabbitPublisher
	assert.NoError(t, p.PublishJSON(context.Background(), map[string]string{"a": "b"}))
	p.Close()
}

func TestNewLoggerStampsAppName(t *testing.T) {
	logger := NewLogger("shop", "production")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	LogWarn(logger, "cache miss", assert.AnError, logrus.Fields{"product_id": "p1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shop", entry["app"])
	assert.Equal(t, "p1", entry["product_id"])
	assert.Equal(t, assert.AnError.Error(), entry["error"])
	assert.Equal(t, "warning", entry["level"])
}

func TestNewLoggerTestEnvIsQuiet(t *testing.T) {
	logger := NewLogger("shop", "test")
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.False(t, logger.IsLevelEnabled(logrus.InfoLevel))
}
