package pubsub

import (
	"strconv"

	"spinrate/internal/domain/constants"
	"spinrate/internal/domain/service"
)

// reviewAttributes builds the message attributes used for subscription filtering and tracing.
func reviewAttributes(event *service.ReviewSubmittedEvent) map[string]string {
	attributes := map[string]string{
		"event_type":  constants.ReviewEventSubmitted,
		"review_id":   strconv.FormatInt(event.ReviewID, 10),
		"album_id":    strconv.FormatInt(event.AlbumID, 10),
		"is_verified": strconv.FormatBool(event.IsVerified),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
