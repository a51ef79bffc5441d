package service

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rentaride/car-rental-api/internal/config"
	"github.com/rentaride/car-rental-api/internal/metrics"
	"github.com/rentaride/car-rental-api/internal/transport/rest/requestid"
)

// EventPublisher is the minimal surface the auth service needs to hand email
// work to the out-of-process mailer.
type EventPublisher interface {
	PublishVerificationEmail(ctx context.Context, email, name, code string) error
	PublishWelcomeEmail(ctx context.Context, email, name string) error
}

// RabbitMQPublisher publishes email events to the rental.events topic exchange.
type RabbitMQPublisher struct {
	ch *amqp.Channel
}

func NewRabbitMQPublisher(ch *amqp.Channel) *RabbitMQPublisher {
	return &RabbitMQPublisher{ch: ch}
}

const (
	routingKeyVerification = "email.verification"
	routingKeyWelcome      = "email.welcome"
)

type verificationEmailMessage struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Code  string `json:"code"`
}

type welcomeEmailMessage struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (p *RabbitMQPublisher) PublishVerificationEmail(ctx context.Context, email, name, code string) error {
	return p.publish(ctx, routingKeyVerification, verificationEmailMessage{
		Type:  "verification_email",
		Email: email,
		Name:  name,
		Code:  code,
	})
}

func (p *RabbitMQPublisher) PublishWelcomeEmail(ctx context.Context, email, name string) error {
	return p.publish(ctx, routingKeyWelcome, welcomeEmailMessage{
		Type:  "welcome_email",
		Email: email,
		Name:  name,
	})
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	headers := make(amqp.Table)
	if rid := requestid.FromContext(ctx); rid != "" {
		headers["X-Request-ID"] = rid
	}

	err = p.ch.PublishWithContext(
		ctx,
		config.EventsExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Headers:     headers,
		},
	)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.EmailEventsPublished.WithLabelValues(routingKey, outcome).Inc()
	return err
}
