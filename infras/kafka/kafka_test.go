package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/infras/kafka"
	"hotel/infras/kafka/mocks"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const topic = "hotel.bookings"

var fastRetry = kafka.Retry{Initial: time.Millisecond, Max: 2 * time.Millisecond}

type payload struct {
	BookingID string `json:"booking_id"`
	Total     int64  `json:"total"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:     "b-1",
		Value:   payload{BookingID: "b-1", Total: 470000},
		Headers: map[string]string{"event_type": "booking.created"},
	}

	msg, err := message.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("b-1"), msg.Key)
	assert.JSONEq(t, `{"booking_id":"b-1","total":470000}`, string(msg.Value))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("booking.created"), msg.Headers[0].Value)
}

func TestMessage_ToKafkaMessageRejectsUnencodableValue(t *testing.T) {
	message := kafka.Message{Key: "b-1", Value: make(chan int)}

	_, err := message.ToKafkaMessage()

	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	decoded, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte(`{"booking_id":"b-2","total":100}`)})

	require.NoError(t, err)
	assert.Equal(t, payload{BookingID: "b-2", Total: 100}, decoded)

	_, err = kafka.Decode[payload](kafkaGo.Message{Value: []byte(`{`)})
	assert.Error(t, err)
}

func TestConsumeFrom_RetriesFailedMessageBeforeNext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMockReader(gomock.NewController(t))

	first := kafkaGo.Message{Topic: topic, Key: []byte("b-1"), Offset: 10}
	second := kafkaGo.Message{Topic: topic, Key: []byte("b-2"), Offset: 11}

	gomock.InOrder(
		reader.EXPECT().FetchMessage(gomock.Any()).Return(first, nil),
		reader.EXPECT().CommitMessages(gomock.Any(), first).Return(nil),
		reader.EXPECT().FetchMessage(gomock.Any()).Return(second, nil),
		reader.EXPECT().CommitMessages(gomock.Any(), second).Return(nil),
		reader.EXPECT().FetchMessage(gomock.Any()).DoAndReturn(func(context.Context) (kafkaGo.Message, error) {
			cancel()

			return kafkaGo.Message{}, context.Canceled
		}),
	)

	var handled []int64

	failures := 2

	kafka.ConsumeFrom(ctx, reader, topic, func(_ context.Context, msg kafkaGo.Message) error {
		handled = append(handled, msg.Offset)

		if msg.Offset == first.Offset && failures > 0 {
			failures--

			return errors.New("smtp: connection refused")
		}

		return nil
	}, fastRetry)

	assert.Equal(t, []int64{10, 10, 10, 11}, handled)
}

func TestConsumeFrom_StopsWithoutCommittingWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMockReader(gomock.NewController(t))

	failing := kafkaGo.Message{Topic: topic, Key: []byte("b-1"), Offset: 3}

	reader.EXPECT().FetchMessage(gomock.Any()).Return(failing, nil).Times(1)
	reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Times(0)

	attempts := 0

	done := make(chan struct{})

	go func() {
		defer close(done)

		kafka.ConsumeFrom(ctx, reader, topic, func(context.Context, kafkaGo.Message) error {
			attempts++
			if attempts == 3 {
				cancel()
			}

			return errors.New("smtp: connection refused")
		}, fastRetry)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.Equal(t, 3, attempts)
}
