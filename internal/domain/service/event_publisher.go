package service

import (
	"context"
	"time"
)

// ReviewSubmittedEvent represents a stored review to be folded into album rating aggregates by the rating worker
type ReviewSubmittedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	ReviewID    int64     `json:"review_id"`
	AlbumID     int64     `json:"album_id"`
	Rating      int       `json:"rating"`
	IsVerified  bool      `json:"is_verified"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewSubmitted publishes a review event for async processing
	PublishReviewSubmitted(ctx context.Context, event *ReviewSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
