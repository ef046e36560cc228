package worker

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	notificationService "hotel/internal/domains/notification/service"

	"github.com/rs/zerolog/log"
)

const flushTimeout = 5 * time.Second

// Worker consumes booking events and mails guests.
type Worker struct {
	Config       *config.Config
	Kafka        kafka.Client
	Otel         otel.Otel
	Notification notificationService.Notification
}

func New(cfg *config.Config, kafka kafka.Client, otel otel.Otel, notification notificationService.Notification) *Worker {
	return &Worker{
		Config:       cfg,
		Kafka:        kafka,
		Otel:         otel,
		Notification: notification,
	}
}

// Run blocks until SIGTERM or SIGINT.
func (w *Worker) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Start(ctx)

	flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := w.Otel.Shutdown(flushCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Worker stopped.")
}

// Start consumes until ctx is done. With Kafka disabled it only waits for ctx.
func (w *Worker) Start(ctx context.Context) {
	topic := w.Config.Kafka.Topic.Booking

	if !w.Kafka.Enabled() {
		log.Warn().Msg("Kafka disabled, notification worker is idle")
		<-ctx.Done()

		return
	}

	log.Info().Str("topic", topic).Str("group", w.Config.Kafka.ConsumerGroup).Msg("Starting notification worker.")

	w.Kafka.Consume(ctx, w.Config.Kafka.ConsumerGroup, topic, w.Notification.Handle)
}
