package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-mongo-shop/pkg/mailer"
)

type recordingSender struct {
	sent []string
	err  error
}

func (r *recordingSender) Send(_ context.Context, to, subject, _, _ string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, to+"|"+subject)
	return nil
}

func newWorker(s mailer.Sender) *worker {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &worker{sender: s, logger: l, timeout: time.Second}
}

func TestHandleOrderPlaced(t *testing.T) {
	s := &recordingSender{}
	body, err := json.Marshal(mailer.NewOrderPlacedJob("Shop", "a@x.io", "o1", "p1"))
	require.NoError(t, err)

	assert.Equal(t, outcomeAck, newWorker(s).handle(context.Background(), body))
	assert.Equal(t, []string{"a@x.io|Shop: order o1 received"}, s.sent)
}

func TestHandleRejectsPoisonMessages(t *testing.T) {
	w := newWorker(&recordingSender{})
	assert.Equal(t, outcomeReject, w.handle(context.Background(), []byte("{")))
	assert.Equal(t, outcomeReject, w.handle(context.Background(), []byte(`{"template":"order_placed"}`)))
	assert.Equal(t, outcomeReject, w.handle(context.Background(), []byte(`{"to":"a@x.io","template":"unknown"}`)))
}

func TestHandleRetriesSendFailures(t *testing.T) {
	w := newWorker(&recordingSender{err: errors.New("mailgun 503")})
	body := []byte(`{"to":"a@x.io","subject":"hi","text":"hello"}`)
	assert.Equal(t, outcomeRetry, w.handle(context.Background(), body))
}
