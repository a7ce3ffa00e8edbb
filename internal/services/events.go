package services

import (
	log "github.com/sirupsen/logrus"
)

// Routing keys for domain events.
const (
	EventUserRegistered         = "user.registered"
	EventActionCreated          = "action.created"
	EventActionLiked            = "action.liked"
	EventParticipationCreated   = "participation.created"
	EventParticipationValidated = "participation.validated"
)

// EventPublisher ships domain events to a broker. rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishEvent(routingKey string, payload interface{}) error
}

// publish sends an event if a publisher is configured. Failures are logged and
// never fail the operation that produced the event.
func publish(events EventPublisher, routingKey string, payload map[string]interface{}) {
	if events == nil {
		log.WithField("event", routingKey).Debug("Event publisher not configured, skipping event")
		return
	}
	if err := events.PublishEvent(routingKey, payload); err != nil {
		log.WithError(err).WithField("event", routingKey).Warn("Failed to publish event")
	}
}
