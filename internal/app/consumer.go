package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clocker/internal/bootstrap"
	"go-clocker/internal/config"
	"go-clocker/internal/events"
	"go-clocker/internal/messaging/kafka/consumer"
	"go-clocker/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const attendanceConsumerGroup = "go-clocker-attendance-cache"

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.AttendanceRecordedTopic,
		GroupID:        attendanceConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	handler := consumer.NewAttendanceRecordedHandler(
		rdb,
		bootstrap.NewStdoutAuditLogger(),
		cfg.Attendance.Location,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retry := consumer.RetryConfig{Initial: time.Second, Max: time.Minute}
	go consumer.ConsumeAttendanceRecorded(ctx, reader, handler, retry, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
