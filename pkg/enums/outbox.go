package enums

// OutboxEventType identifies the domain event recorded in outbox_events.
type OutboxEventType string

const (
	OutboxEventOrderCreated   OutboxEventType = "order.created"
	OutboxEventOrderSubmitted OutboxEventType = "order.submitted"
	OutboxEventOrderShipped   OutboxEventType = "order.shipped"
	OutboxEventOrderCancelled OutboxEventType = "order.cancelled"
)

// OutboxAggregateType names the aggregate an outbox event belongs to.
type OutboxAggregateType string

const (
	OutboxAggregateOrder OutboxAggregateType = "order"
)
