package diagnostics

import (
	"encoding/json"
	"sync"

	"asset-inventory-dashboard/internal/logger"

	"go.uber.org/zap"
)

const defaultBufferSize = 256

// Publisher is the subset of the MQTT client used by MQTTSink.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// MQTTSink publishes diagnostics as JSON messages from a background worker.
// When the buffer is full new events are dropped.
type MQTTSink struct {
	publisher Publisher
	topic     string
	qos       byte

	mu     sync.RWMutex
	closed bool
	events chan []byte
	wg     sync.WaitGroup
}

// NewMQTTSink starts the publishing worker.
func NewMQTTSink(publisher Publisher, topic string, qos byte, bufferSize int) *MQTTSink {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	s := &MQTTSink{
		publisher: publisher,
		topic:     topic,
		qos:       qos,
		events:    make(chan []byte, bufferSize),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *MQTTSink) FetchFailed(event FetchFailedEvent) {
	s.enqueue("fetch_failed", event)
}

func (s *MQTTSink) PassCompleted(event PassCompletedEvent) {
	s.enqueue("pass_completed", event)
}

// Close stops the worker after draining queued events.
func (s *MQTTSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *MQTTSink) enqueue(eventType string, payload any) {
	data, err := json.Marshal(envelope{Type: eventType, Payload: payload})
	if err != nil {
		logger.Error("Failed to encode diagnostics event",
			zap.String("type", eventType),
			zap.Error(err),
		)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	select {
	case s.events <- data:
	default:
		logger.Warn("Diagnostics buffer full, dropping event",
			zap.String("type", eventType),
			zap.String("topic", s.topic),
		)
	}
}

func (s *MQTTSink) worker() {
	defer s.wg.Done()

	for data := range s.events {
		if err := s.publisher.Publish(s.topic, s.qos, false, data); err != nil {
			logger.Warn("Failed to publish diagnostics event",
				zap.String("topic", s.topic),
				zap.Error(err),
			)
		}
	}
}
