package pubsub

import (
	"strconv"

	"storeradar/internal/domain/service"
)

// eventAttributes lets subscribers filter on the day without decoding the body.
func eventAttributes(event *service.PriceChangeEvent) map[string]string {
	attributes := map[string]string{
		"event_type":   "price_change",
		"inspect_day":  event.InspectDay,
		"previous_day": event.PreviousDay,
		"inserted":     strconv.FormatInt(event.Inserted, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
