package redispub_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"warehouse/internal/adapters/out/redispub"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// EventPublisherIntegrationTestSuite verifies Redis event delivery using a
// real Redis container.
type EventPublisherIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	publisher *redispub.EventPublisher
}

func (suite *EventPublisherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.publisher = redispub.NewEventPublisher(
		suite.client, "warehouse.events", slog.Default())
}

func (suite *EventPublisherIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EventPublisherIntegrationTestSuite) TestPublish_DeliversJSONToChannel() {
	ctx := context.Background()

	sub := suite.client.Subscribe(ctx, "warehouse.events")
	defer sub.Close()

	// wait for the subscription before publishing
	_, err := sub.Receive(ctx)
	suite.Require().NoError(err)

	event := ports.NewDomainEvent("order.approved", kernel.NewUUID(), map[string]string{
		"orderNo": "WHI-20260901-AB12CD34",
	})
	suite.Require().NoError(suite.publisher.Publish(ctx, event))

	msg, err := sub.ReceiveTimeout(ctx, 5*time.Second)
	suite.Require().NoError(err)
	received, ok := msg.(*redis.Message)
	suite.Require().True(ok)

	var decoded ports.DomainEvent
	suite.Require().NoError(json.Unmarshal([]byte(received.Payload), &decoded))
	suite.Equal(event.Name, decoded.Name)
	suite.Equal(event.SubjectID, decoded.SubjectID)
	suite.Equal("WHI-20260901-AB12CD34", decoded.Attributes["orderNo"])
}

func (suite *EventPublisherIntegrationTestSuite) TestPublish_BrokerDown_ReturnsTransportError() {
	ctx := context.Background()

	dead := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer dead.Close()
	publisher := redispub.NewEventPublisher(dead, "warehouse.events", slog.Default())

	event := ports.NewDomainEvent("order.approved", kernel.NewUUID(), nil)
	err := publisher.Publish(ctx, event)

	var transportErr *errs.TransportError
	suite.Require().ErrorAs(err, &transportErr)
}

func TestEventPublisherIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(EventPublisherIntegrationTestSuite))
}
