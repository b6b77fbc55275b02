package push

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"frankies/internal/event"
	"frankies/internal/pkg/logger"
	"frankies/internal/pkg/mq"
)

// Fanout consumes the notifications topic and forwards each event to the
// hub. It runs under its own consumer group so delivery to connected
// websockets is independent of the notification worker.
type Fanout struct {
	reader *kafka.Reader
	hub    *Hub
}

func NewFanout(reader *kafka.Reader, hub *Hub) *Fanout {
	return &Fanout{reader: reader, hub: hub}
}

// Run blocks until ctx is cancelled.
func (f *Fanout) Run(ctx context.Context) error {
	logger.L().Info().Str("topic", f.reader.Config().Topic).Msg("push fanout started")
	for {
		msg, err := f.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.L().Error().Err(err).Msg("push fanout read failed, retrying")
			time.Sleep(time.Second)
			continue
		}

		msgCtx := mq.ExtractTraceContext(ctx, msg.Headers)
		var n event.Notification
		if err := json.Unmarshal(msg.Value, &n); err != nil {
			logger.Ctx(msgCtx).Error().Err(err).Msg("skipping malformed notification")
		} else {
			f.hub.Broadcast(n)
		}

		if err := f.reader.CommitMessages(ctx, msg); err != nil {
			logger.Ctx(msgCtx).Error().Err(err).Msg("failed to commit notification offset")
		}
	}
}

func (f *Fanout) Close() error {
	return f.reader.Close()
}
