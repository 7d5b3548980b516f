package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/autonomy-assessment/schema"
)

type PatientTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewPatientTestSuite(connURI, dbName string) *PatientTestSuite {
	return &PatientTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *PatientTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *PatientTestSuite) SetupTest() {
	if _, err := s.testDatabase.Collection(schema.PatientCollection).DeleteMany(context.Background(), map[string]interface{}{}); err != nil {
		s.T().Fatal(err)
	}
}

func (s *PatientTestSuite) TearDownSuite() {
	if err := s.CleanMongoDB(); err != nil {
		s.T().Error(err)
	}
	_ = s.mongoClient.Disconnect(context.Background())
}

func (s *PatientTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *PatientTestSuite) TestUpsertAndGetPatient() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	inserted, err := store.UpsertPatients(schema.SeedPatients)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(len(schema.SeedPatients)), inserted)

	p, err := store.GetPatient("patient_1")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), schema.SeedPatients[0], *p)

	p, err = store.GetPatient("patient_2")
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), p.Age)
	assert.Equal(s.T(), schema.Sex(""), p.Sex)

	// upsert again only replaces
	inserted, err = store.UpsertPatients(schema.SeedPatients[:1])
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), inserted)
}

func (s *PatientTestSuite) TestGetPatientNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	p, err := store.GetPatient("nobody")
	assert.Equal(s.T(), ErrPatientNotFound, err)
	assert.Nil(s.T(), p)
}

func (s *PatientTestSuite) TestListPatientIDs() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	ids, err := store.ListPatientIDs()
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), ids)

	_, err = store.UpsertPatients(schema.SeedPatients)
	assert.NoError(s.T(), err)

	ids, err = store.ListPatientIDs()
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"patient_1", "patient_2", "patient_3", "patient_4"}, ids)
}

func (s *PatientTestSuite) TestUpsertPatientWithoutID() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.UpsertPatients([]schema.Patient{{Symptoms: []schema.SymptomType{schema.Fever}}})
	assert.Error(s.T(), err)

	inserted, err := store.UpsertPatients(nil)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), inserted)
}

func TestPatientTestSuite(t *testing.T) {
	conn := os.Getenv("AUTONOMY_TEST_MONGO_CONN")
	if conn == "" {
		t.Skip("AUTONOMY_TEST_MONGO_CONN is not set")
	}
	suite.Run(t, NewPatientTestSuite(conn, "test-assessment-db"))
}
