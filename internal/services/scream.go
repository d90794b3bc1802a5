package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/sbilibin2017/scream-jar-server/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=scream.go -destination=mock_scream.go -package=services

// ScreamWriter stores new screams.
type ScreamWriter interface {
	Save(ctx context.Context, userID string, categoryIndex int, content, screamDate string) (int64, error) // Returns the generated id
}

// ScreamReader reads the screams of a user.
type ScreamReader interface {
	ListByUserID(ctx context.Context, userID string) ([]models.ScreamDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ScreamService stores and lists screams and publishes creation events.
type ScreamService struct {
	writeRepo   ScreamWriter
	readRepo    ScreamReader
	kafkaWriter KafkaWriter
}

// NewScreamService creates a new ScreamService. kafkaWriter may be nil.
func NewScreamService(writeRepo ScreamWriter, readRepo ScreamReader, kafkaWriter KafkaWriter) *ScreamService {
	return &ScreamService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// SaveScream validates and stores a scream and returns its id.
func (s *ScreamService) SaveScream(ctx context.Context, in models.ScreamInput) (int64, error) {
	if err := requireFields("userID", in.UserID, "content", in.Content, "screamDate", in.ScreamDate); err != nil {
		return 0, err
	}
	if in.CategoryIndex == nil {
		return 0, fmt.Errorf("%w: categoryIndex is required", ErrValidation)
	}

	id, err := s.writeRepo.Save(ctx, in.UserID, *in.CategoryIndex, in.Content, in.ScreamDate)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			logger.Log.Warnw("scream for unknown user", "userID", in.UserID)
			return 0, ErrUnknownUser
		}
		logger.Log.Errorw("failed to save scream", "userID", in.UserID, "error", err)
		return 0, err
	}

	s.publishScream(ctx, models.ScreamEvent{
		EventID:       uuid.NewString(),
		ScreamID:      id,
		UserID:        in.UserID,
		CategoryIndex: *in.CategoryIndex,
		ScreamDate:    in.ScreamDate,
		Timestamp:     time.Now().Unix(),
	})

	return id, nil
}

// LoadScreams returns the screams of a user in insertion order. A user without
// screams, or an unknown user, yields an empty slice.
func (s *ScreamService) LoadScreams(ctx context.Context, userID string) ([]models.ScreamDB, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrValidation)
	}

	screams, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load screams", "userID", userID, "error", err)
		return nil, err
	}
	if screams == nil {
		screams = []models.ScreamDB{}
	}
	return screams, nil
}

// publishScream publishes a scream event to Kafka. Failures are logged only.
func (s *ScreamService) publishScream(ctx context.Context, event models.ScreamEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal scream event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish scream event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Scream event published to Kafka", "event_id", event.EventID, "scream_id", event.ScreamID)
	}
}
