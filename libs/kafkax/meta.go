package kafkax

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// Canonical header keys carried on every event this platform publishes.
const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
	HeaderCompanyID = "company_id"
)

// EventMeta is the metadata carried on Kafka messages across services.
// CompanyID is the tenant the event belongs to; it may be empty on events
// produced before the header was introduced.
type EventMeta struct {
	EventID   string
	EventType string
	CompanyID string
}

func ExtractEventMeta(msg kafka.Message) EventMeta {
	meta := EventMeta{
		EventID:   HeaderValue(msg.Headers, HeaderEventID),
		EventType: HeaderValue(msg.Headers, HeaderEventType),
		CompanyID: HeaderValue(msg.Headers, HeaderCompanyID),
	}
	if meta.EventID == "" {
		meta.EventID = string(msg.Key)
	}
	if meta.EventType == "" {
		meta.EventType = msg.Topic
	}
	return meta
}

func HeaderValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
