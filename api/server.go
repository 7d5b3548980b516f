package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/autonomy-assessment/logmodule"
	"github.com/bitmark-inc/autonomy-assessment/score"
	"github.com/bitmark-inc/autonomy-assessment/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Patient profiles
	mongoStore store.MongoStore

	// Assessment pipelines
	engine *score.Engine

	// Assessment counters
	metrics tally.Scope
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	engine *score.Engine,
	metrics tally.Scope) *Server {
	if metrics == nil {
		metrics = tally.NoopScope
	}

	return &Server{
		mongoStore: mongoStore,
		engine:     engine,
		metrics:    metrics,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	catalogRoute := r.Group("/api")
	catalogRoute.Use(logmodule.Ginrus("Catalog"))
	catalogRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		catalogRoute.GET("/symptoms", s.getSymptoms)
		catalogRoute.GET("/risk-factors", s.getRiskFactors)
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	if key := viper.GetString("server.apikey.assessment"); key != "" {
		apiRoute.Use(s.apikeyAuthentication(key))
	}

	assessmentRoute := apiRoute.Group("/assessments")
	{
		assessmentRoute.POST("/combined", s.combinedAssessment)
		assessmentRoute.POST("/symptoms", s.symptomsOnlyAssessment)
		assessmentRoute.POST("/bayes", s.bayesAssessment)
	}

	patientRoute := apiRoute.Group("/patients")
	{
		patientRoute.GET("", s.listPatients)
		patientRoute.GET("/:patientID/assessment", s.patientAssessment)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
