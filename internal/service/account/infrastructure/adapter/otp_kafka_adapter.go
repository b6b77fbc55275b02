package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"frankies/internal/event"
	"frankies/internal/pkg/mq"
)

// OTPKafkaAdapter hands one-time codes to the messaging collaborator via the
// notifications topic; the notification worker performs the actual delivery.
type OTPKafkaAdapter struct {
	writer *kafka.Writer
}

func NewOTPKafkaAdapter(writer *kafka.Writer) *OTPKafkaAdapter {
	return &OTPKafkaAdapter{writer: writer}
}

func (a *OTPKafkaAdapter) Send(ctx context.Context, email, code string) error {
	payload, err := json.Marshal(event.Notification{
		Type:      event.TypeOTP,
		Recipient: email,
		Message:   fmt.Sprintf("Your one-time login code is %s. It expires in 5 minutes.", code),
		SentAt:    time.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal otp notification")
	}
	return errors.Wrap(mq.ProduceMessage(ctx, a.writer, []byte(email), payload), "produce otp notification")
}
