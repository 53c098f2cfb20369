package eventbus

// Global topic declarations. One place so ops can reconcile Kafka
// topics against what the code expects.

var (
	TopicEngagementEvents = NewTopic("trendzo.engagement.events")
	TopicMetricsRequests  = NewTopic("trendzo.metrics.requests")
)

var AllTopics = []Topic{
	TopicEngagementEvents,
	TopicMetricsRequests,
}
