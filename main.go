package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/autonomy-assessment/api"
	"github.com/bitmark-inc/autonomy-assessment/logmodule"
	"github.com/bitmark-inc/autonomy-assessment/schema"
	"github.com/bitmark-inc/autonomy-assessment/score"
	"github.com/bitmark-inc/autonomy-assessment/store"
	"github.com/bitmark-inc/autonomy-assessment/utils"
)

var (
	server     *api.Server
	mongoStore store.MongoStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("autonomy")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("metrics.interval", time.Minute)
}

// loadModelConfig overrides the built-in model tables with the `model` section
func loadModelConfig() (score.Config, error) {
	c := score.DefaultConfig()
	if !viper.IsSet("model") {
		return c, nil
	}

	// a configured list replaces the default bands instead of merging into them
	if viper.IsSet("model.combined.age_bands") {
		c.Combined.AgeBands = nil
	}

	if err := viper.UnmarshalKey("model", &c); err != nil {
		return c, err
	}

	mergeLikelihood(c.Bayes.Likelihood, score.DefaultConfig().Bayes.Likelihood)
	return c, nil
}

// mergeLikelihood fills the entries a partial likelihood override of one
// infection state leaves out, since a decoded nested map replaces the default
func mergeLikelihood(table, defaults schema.ConditionalTable) {
	if table == nil {
		return
	}
	for state, entries := range defaults {
		if table[state] == nil {
			table[state] = entries
			continue
		}
		for e, p := range entries {
			if _, ok := table[state][e]; !ok {
				table[state][e] = p
			}
		}
	}
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if dir := viper.GetString("i18n.dir"); dir != "" {
		if err := utils.InitI18NBundle(dir); err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Loaded i18n messages")
	}

	modelConfig, err := loadModelConfig()
	if err != nil {
		log.Panicf("decode model config with error: %s", err)
	}
	engine, err := score.NewEngine(modelConfig)
	if err != nil {
		log.Panicf("invalid model config: %s", err)
	}
	log.WithField("prefix", "init").Info("Initialized assessment models")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	metrics, metricsCloser := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   "autonomy",
		Tags:     map[string]string{"version": viper.GetString("server.version")},
		Reporter: logmodule.NewStatsReporter("metrics"),
	}, viper.GetDuration("metrics.interval"))

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown assessment api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if err := metricsCloser.Close(); err != nil {
			log.Error(err)
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	// Init http server
	server = api.NewServer(mongoStore, engine, metrics)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
