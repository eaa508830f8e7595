package realtime

import (
	"strings"
)

// SubscriptionKind is the client-declared subscription type. Clients should
// send it explicitly; the query-fragment fallback below exists for older
// clients that only send a raw query string.
type SubscriptionKind string

const (
	KindTaskUpdates  SubscriptionKind = "TASK_UPDATES"
	KindCommentAdded SubscriptionKind = "COMMENT_ADDED"
)

// TaskTopic returns the broadcast topic for task changes within a project
func TaskTopic(projectID string) string {
	return "project-task-stream:" + projectID
}

// CommentTopic returns the broadcast topic for comment additions on a task
func CommentTopic(taskID string) string {
	return "task-comment-stream:" + taskID
}

// SubscribePayload is the filter description carried by a subscribe frame
type SubscribePayload struct {
	Kind      SubscriptionKind  `json:"kind,omitempty"`
	Query     string            `json:"query,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

// ResolveTopic classifies a subscribe payload into a broadcast topic.
// Returns false when the payload is unrecognized; per contract such a
// subscribe is silently ignored rather than rejected.
func ResolveTopic(p SubscribePayload) (string, bool) {
	switch p.Kind {
	case KindTaskUpdates:
		if id := p.Variables["projectId"]; id != "" {
			return TaskTopic(id), true
		}
		return "", false
	case KindCommentAdded:
		if id := p.Variables["taskId"]; id != "" {
			return CommentTopic(id), true
		}
		return "", false
	}

	// Fallback for clients that send only a query fragment
	if strings.Contains(p.Query, "taskUpdated") {
		if id := p.Variables["projectId"]; id != "" {
			return TaskTopic(id), true
		}
	}
	if strings.Contains(p.Query, "commentAdded") {
		if id := p.Variables["taskId"]; id != "" {
			return CommentTopic(id), true
		}
	}
	return "", false
}
