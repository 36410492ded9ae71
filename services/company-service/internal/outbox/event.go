package outbox

// Event is the domain event envelope written to the outbox table.
// The Kafka topic name equals EventType (event per topic).
type Event struct {
	AggregateType string
	AggregateID   string
	CompanyID     string
	EventType     string
	Payload       []byte
}

// Topics this service publishes. scheduling-service consumes both to keep
// its local settings and PTO replicas fresh.
const (
	TopicSettingsUpdated = "company.settings.updated.v1"
	TopicTimeOffChanged  = "company.timeoff.changed.v1"
)
