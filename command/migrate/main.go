package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/autonomy-assessment/schema"
	"github.com/bitmark-inc/autonomy-assessment/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("autonomy")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := migrateMongo(); err != nil {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	s := store.NewMongoStore(client, viper.GetString("mongo.database"))
	inserted, err := s.UpsertPatients(schema.SeedPatients)
	if err != nil {
		fmt.Println("failed to set up collection `patient`: ", err)
		return err
	}

	fmt.Printf("seeded %d patients, %d new\n", len(schema.SeedPatients), inserted)
	return nil
}
