package api

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/autonomy-assessment/schema"
	"github.com/bitmark-inc/autonomy-assessment/score"
	"github.com/bitmark-inc/autonomy-assessment/store"
)

func classLabel(c schema.Class) string {
	if c == schema.Positive {
		return "positive"
	}
	return "negative"
}

// respondAssessment stamps an id on the assessment, counts it and writes it out
func (s *Server) respondAssessment(c *gin.Context, a schema.Assessment) {
	a.ID = uuid.New().String()
	s.metrics.SubScope("assessment").SubScope(string(a.Pipeline)).Counter(classLabel(a.Class)).Inc(1)

	log.WithField("pipeline", a.Pipeline).
		WithField("patient_id", a.PatientID).
		WithField("class", a.Class).
		Debugf("assessment %s: probability %.4f", a.ID, a.Probability)

	c.JSON(http.StatusOK, a)
}

// ignoredLabels lists the symptoms and risk factors the pipelines do not recognize.
// Risk factors are checked against the weights the combined model is configured with.
func (s *Server) ignoredLabels(symptoms []schema.SymptomType, riskFactors []schema.RiskFactorType) []string {
	var ignored []string
	_, unknownSymptoms := schema.SplitSymptoms(symptoms)
	for _, s := range unknownSymptoms {
		ignored = append(ignored, string(s))
	}
	_, unknownRiskFactors := schema.SplitRiskFactors(riskFactors, s.engine.Combined.RiskFactorWeights())
	for _, rf := range unknownRiskFactors {
		ignored = append(ignored, string(rf))
	}
	return ignored
}

func validatePatient(p schema.Patient) error {
	if p.Age != nil && *p.Age < 0 {
		return errors.New("negative age")
	}
	return nil
}

func (s *Server) combinedAssessment(c *gin.Context) {
	var params schema.Patient

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := validatePatient(params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	a := s.engine.Combined.Assess(params)
	a.Ignored = s.ignoredLabels(params.Symptoms, params.RiskFactors)
	s.respondAssessment(c, a)
}

func (s *Server) symptomsOnlyAssessment(c *gin.Context) {
	var params struct {
		Symptoms []schema.SymptomType `json:"symptoms"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	a := s.engine.SymptomsOnly.Assess(params.Symptoms)
	a.Ignored = s.ignoredLabels(params.Symptoms, nil)
	s.respondAssessment(c, a)
}

func (s *Server) bayesAssessment(c *gin.Context) {
	var params schema.Evidence

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	a, err := s.engine.Bayes.Assess(params)
	if err != nil {
		s.metrics.SubScope("assessment").Counter("errors").Inc(1)

		switch {
		case errors.Is(err, score.ErrInvalidEvidence):
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidEvidence, err)
		case errors.Is(err, score.ErrIncompleteModel):
			sentry.CaptureException(err)
			abortWithEncoding(c, http.StatusInternalServerError, errorIncompleteModel, err)
		case errors.Is(err, score.ErrDegenerateModel):
			sentry.CaptureException(err)
			abortWithEncoding(c, http.StatusInternalServerError, errorDegenerateModel, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.respondAssessment(c, a)
}

func (s *Server) listPatients(c *gin.Context) {
	ids, err := s.mongoStore.ListPatientIDs()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": ids})
}

func (s *Server) patientAssessment(c *gin.Context) {
	id := c.Param("patientID")

	p, err := s.mongoStore.GetPatient(id)
	if err != nil {
		if err == store.ErrPatientNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPatientNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	a := s.engine.Combined.Assess(*p)
	a.Ignored = s.ignoredLabels(p.Symptoms, p.RiskFactors)
	s.respondAssessment(c, a)
}
