package pubsub

import "statistics/internal/domain/service"

// eventAttributes builds the message attributes used for filtering and tracing
func eventAttributes(event *service.RemarkEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"remark_id":  event.RemarkID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
