package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-mongo-shop/pkg/helpers"
	"github.com/oksasatya/go-mongo-shop/pkg/mailer"
)

type outcome int

const (
	outcomeAck    outcome = iota
	outcomeRetry          // transient send failure, requeue
	outcomeReject         // the message can never be sent, drop it
)

type worker struct {
	sender  mailer.Sender
	logger  *logrus.Logger
	timeout time.Duration
}

// handle decodes and delivers one queued EmailJob.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		helpers.LogWarn(w.logger, "bad message", err, nil)
		return outcomeReject
	}
	if job.To == "" {
		w.logger.Warn("message without recipient")
		return outcomeReject
	}
	helpers.EnsureRecipientAndEmail(&job)
	helpers.FillTimeText(job.Data)

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := mailer.Deliver(c, w.sender, job); err != nil {
		fields := logrus.Fields{"to": job.To, "template": job.Template}
		if errors.Is(err, mailer.ErrRender) {
			helpers.LogError(w.logger, "render failed", err, fields)
			return outcomeReject
		}
		helpers.LogWarn(w.logger, "send failed", err, fields)
		return outcomeRetry
	}
	helpers.LogInfo(w.logger, "email sent", logrus.Fields{"to": job.To, "template": job.Template})
	return outcomeAck
}
