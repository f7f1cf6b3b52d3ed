package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	TicketsCollection *mongo.Collection
	OrdersCollection  *mongo.Collection
	Client            *mongo.Client
)

// Init connects to MongoDB and binds the two portal collections. The URI
// comes from MONGODB_URI; localhost is the development fallback.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}
	Client = client

	TicketsCollection = client.Database("sunsmart").Collection("tickets")
	OrdersCollection = client.Database("sunsmart").Collection("orders")

	if err := ensureIndexes(ctx); err != nil {
		// Index creation failing (e.g. store briefly unreachable) is not
		// fatal; uniqueness falls back to collision-retry on insert.
		log.Println("index creation:", err)
	}
	return nil
}

// ensureIndexes makes the public id field the id authority for both
// collections and backs the read-time sorts of the list endpoints.
func ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	_, err := TicketsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = OrdersCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "deliveryDate", Value: -1}}},
	})
	return err
}

// Close disconnects the client. Used during graceful shutdown.
func Close(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Println("mongo disconnect:", err)
	}
}
