package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
)

const (
	CollServices     = "services"
	CollBarbers      = "barbers"
	CollAppointments = "appointments"
	CollReviews      = "reviews"
	CollUsers        = "users"
	CollManagers     = "managers"
	CollFeatures     = "features"
	CollPayments     = "payments"
)

// Collections is the process-wide set of store handles, built once and
// passed to repositories.
type Collections struct {
	Client *mongo.Client

	Services     *mongo.Collection
	Barbers      *mongo.Collection
	Appointments *mongo.Collection
	Reviews      *mongo.Collection
	Users        *mongo.Collection
	Managers     *mongo.Collection
	Features     *mongo.Collection
	Payments     *mongo.Collection
}

func NewMongo(ctx context.Context, cfg *config.Config) *Collections {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatalf("failed to connect mongo: %v", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping mongo: %v", err)
	}

	cols := Bind(client, cfg.MongoDatabase)
	cols.EnsureIndexes(ctx)
	return cols
}

func Bind(client *mongo.Client, database string) *Collections {
	d := client.Database(database)
	return &Collections{
		Client:       client,
		Services:     d.Collection(CollServices),
		Barbers:      d.Collection(CollBarbers),
		Appointments: d.Collection(CollAppointments),
		Reviews:      d.Collection(CollReviews),
		Users:        d.Collection(CollUsers),
		Managers:     d.Collection(CollManagers),
		Features:     d.Collection(CollFeatures),
		Payments:     d.Collection(CollPayments),
	}
}

// EnsureIndexes creates the booking uniqueness constraint and lookup indexes.
// Failures are logged: an existing duplicate booking must not keep the API
// from starting.
func (c *Collections) EnsureIndexes(ctx context.Context) {
	idx := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{c.Appointments, mongo.IndexModel{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "barber", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_date_barber_slot"),
		}},
		{c.Appointments, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("by_email"),
		}},
		{c.Users, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		}},
		{c.Payments, mongo.IndexModel{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetName("by_transaction"),
		}},
	}

	for _, i := range idx {
		if _, err := i.coll.Indexes().CreateOne(ctx, i.model); err != nil {
			log.Printf("mongo index %s.%s: %v", i.coll.Name(), *i.model.Options.Name, err)
		}
	}
}

func (c *Collections) Disconnect(ctx context.Context) {
	if err := c.Client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}

func (c *Collections) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}
