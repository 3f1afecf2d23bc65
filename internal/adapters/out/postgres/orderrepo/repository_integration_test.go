package orderrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"salesdelivery/internal/adapters/out/postgres/orderrepo"
	"salesdelivery/internal/adapters/out/postgres/outboxrepo"
	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/model/order"
	"salesdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the order repository against a
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&outboxrepo.OutboxMessageDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines, outbox_messages").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderAndLines() {
	ctx := context.Background()
	o := suite.newOrder("S00001")
	_, err := o.AddLine(kernel.NewUUID(), "Desk", 2, decimal.RequireFromString("150.50"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("S00001", got.Reference())
	suite.Equal(order.Draft, got.Status())
	suite.Require().Len(got.Lines(), 1)
	suite.Equal("Desk", got.Lines()[0].Name())
	suite.True(decimal.RequireFromString("301").Equal(got.AmountTotal()))
	suite.True(got.Shipment().IsEmpty())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateReference_Fails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("S00002")))

	err := suite.repository.Add(ctx, suite.newOrder("S00002"))
	suite.Require().Error(err)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StoresShipmentAndDeliveryLine() {
	ctx := context.Background()
	o := suite.newOrder("S00003")
	_, err := o.AddLine(kernel.NewUUID(), "Chair", 4, decimal.NewFromInt(25))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	c := suite.newCarrier(carrier.EasypostOCA)
	line, err := o.CreateDeliveryLine(c, decimal.RequireFromString("12.40"))
	suite.Require().NoError(err)
	suite.Require().NoError(line.Rename(line.Name() + " - USPS"))
	o.SetShipment(order.NewShipment("rate_1", "shp_1", "USPS"))

	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got.Lines(), 2)
	suite.Equal("Chair", got.Lines()[0].Name())
	suite.Require().NotNil(got.DeliveryLine())
	suite.Equal("EasyPost OCA - USPS", got.DeliveryLine().Name())
	suite.Require().NotNil(got.CarrierID())
	suite.Equal(c.ID(), *got.CarrierID())
	suite.Equal("rate_1", *got.Shipment().RateID())
	suite.Equal("shp_1", *got.Shipment().ShipmentID())
	suite.Equal("USPS", *got.Shipment().CarrierName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearedShipmentIsStoredAsNull() {
	ctx := context.Background()
	o := suite.newOrder("S00004")
	o.SetShipment(order.NewShipment("rate_1", "shp_1", "USPS"))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	o.SetShipment(order.NewShipment("", "", ""))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.Shipment().IsEmpty())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesCarrierChangesToOutbox() {
	ctx := context.Background()
	o := suite.newOrder("S00005")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	o.SetShipment(order.NewShipment("rate_1", "shp_1", "USPS"))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Empty(o.DomainEvents())

	// Same carrier name, no new message.
	o.SetShipment(order.NewShipment("rate_2", "shp_2", "USPS"))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	o.SetShipment(order.NewShipment("rate_3", "shp_3", "FedEx"))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	var messages []outboxrepo.OutboxMessageDTO
	suite.Require().NoError(suite.db.Order("occurred_at").Find(&messages).Error)
	suite.Require().Len(messages, 2)
	for _, m := range messages {
		suite.Equal(order.EventTypeShipmentCarrierChanged, m.EventType)
		suite.Equal(o.ID().Bytes(), m.AggregateID)
	}

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(messages[1].Payload, &payload))
	suite.Equal(o.ID().String(), payload["order_id"])
	suite.Equal("USPS", payload["previous"])
	suite.Equal("FedEx", payload["current"])

	var first map[string]any
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &first))
	suite.Nil(first["previous"])
	suite.Equal("USPS", first["current"])
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder("S00006"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Nil(got)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidID_Fails() {
	_, err := suite.repository.Get(context.Background(), kernel.UUID{})
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(reference string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), reference)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) newCarrier(dt carrier.DeliveryType) *carrier.Carrier {
	c, err := carrier.NewCarrier(kernel.NewUUID(), "EasyPost OCA", dt, nil)
	suite.Require().NoError(err)
	return c
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
