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

// Topics this service publishes.
const (
	TopicWorkOrderBooked    = "scheduling.workorder.booked.v1"
	TopicWorkOrderCancelled = "scheduling.workorder.cancelled.v1"
)
