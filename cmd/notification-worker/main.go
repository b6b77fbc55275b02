package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"frankies/internal/event"
	"frankies/internal/pkg/bootstrap"
	"frankies/internal/pkg/config"
	"frankies/internal/pkg/logger"
	"frankies/internal/pkg/mq"
	"frankies/internal/pkg/tracing"
)

const serviceName = "notification-worker"

// consumer drains the notifications topic and delivers each event to the
// recipient's channel. Delivery here is a structured log line standing in
// for the mail/SMS gateway call.
type consumer struct {
	reader *kafka.Reader
	tracer trace.Tracer
}

func (c *consumer) Run(ctx context.Context) error {
	logger.L().Info().Str("topic", c.reader.Config().Topic).Msg("notification worker started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.L().Error().Err(err).Msg("fetch failed, retrying")
			time.Sleep(time.Second)
			continue
		}
		c.handle(ctx, msg)
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			logger.L().Error().Err(err).Msg("failed to commit offset")
		}
	}
}

func (c *consumer) handle(ctx context.Context, msg kafka.Message) {
	msgCtx := mq.ExtractTraceContext(ctx, msg.Headers)
	msgCtx, span := c.tracer.Start(msgCtx, "notification.deliver")
	defer span.End()

	var n event.Notification
	if err := json.Unmarshal(msg.Value, &n); err != nil {
		logger.Ctx(msgCtx).Error().Err(err).Msg("skipping malformed notification")
		return
	}

	logger.Ctx(msgCtx).Info().
		Str("type", n.Type).
		Str("recipient", n.Recipient).
		Str("orderId", n.OrderID).
		Str("status", n.Status).
		Msg(n.Message)
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(serviceName, cfg.Log.Level)

	tp, err := tracing.InitTracerProvider(serviceName, cfg.Jaeger.Endpoint)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to initialize tracer provider")
	}

	reader := mq.NewKafkaReader(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic, "notification-worker-group")
	worker := &consumer{reader: reader, tracer: otel.Tracer(serviceName)}

	err = bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Workers:     []bootstrap.Worker{worker},
		Cleanup: []func(ctx context.Context) error{
			func(ctx context.Context) error { return tp.Shutdown(ctx) },
			func(context.Context) error { return reader.Close() },
		},
	})
	if err != nil {
		logger.L().Fatal().Err(err).Msg("service exited with error")
	}
}
