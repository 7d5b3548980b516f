package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/autonomy-assessment/schema"
)

var ErrPatientNotFound = errors.New("patient not found")

// PatientProfile supplies the patient records assessed by the pipelines
type PatientProfile interface {
	GetPatient(id string) (*schema.Patient, error)
	ListPatientIDs() ([]string, error)
	UpsertPatients(patients []schema.Patient) (int64, error)
}

// GetPatient returns the patient of a given id or ErrPatientNotFound
func (m *mongoDB) GetPatient(id string) (*schema.Patient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var p schema.Patient
	if err := c.Collection(schema.PatientCollection).FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	return &p, nil
}

// ListPatientIDs returns the ids of every stored patient in ascending order
func (m *mongoDB) ListPatientIDs() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	opts := options.Find().
		SetProjection(bson.M{"id": 1, "_id": 0}).
		SetSort(bson.M{"id": 1})
	cursor, err := c.Collection(schema.PatientCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var p schema.Patient
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		ids = append(ids, p.ID)
	}

	return ids, cursor.Err()
}

// UpsertPatients replaces each patient by id and returns how many were newly inserted
func (m *mongoDB) UpsertPatients(patients []schema.Patient) (int64, error) {
	if len(patients) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	models := make([]mongo.WriteModel, 0, len(patients))
	for _, p := range patients {
		if p.ID == "" {
			return 0, fmt.Errorf("patient without id")
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}

	result, err := c.Collection(schema.PatientCollection).BulkWrite(ctx, models)
	if err != nil {
		return 0, err
	}

	log.WithField("prefix", mongoLogPrefix).
		WithField("matched", result.MatchedCount).
		WithField("upserted", result.UpsertedCount).
		Info("upsert patients")

	return result.UpsertedCount, nil
}
