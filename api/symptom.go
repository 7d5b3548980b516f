package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/autonomy-assessment/schema"
	"github.com/bitmark-inc/autonomy-assessment/utils"
)

func requestLang(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return c.GetHeader("Accept-Language")
}

func (s *Server) getSymptoms(c *gin.Context) {
	loc := utils.NewLocalizer(requestLang(c))

	symptoms := make([]schema.Symptom, 0, len(schema.Symptoms))
	for _, sy := range schema.Symptoms {
		sy.Name = utils.LocalizeOr(loc, fmt.Sprintf("symptoms.%s.name", sy.ID), sy.Name)
		sy.Desc = utils.LocalizeOr(loc, fmt.Sprintf("symptoms.%s.desc", sy.ID), sy.Desc)
		symptoms = append(symptoms, sy)
	}

	c.JSON(http.StatusOK, gin.H{"symptoms": symptoms})
}

func (s *Server) getRiskFactors(c *gin.Context) {
	loc := utils.NewLocalizer(requestLang(c))

	ids := s.engine.Combined.RiskFactors()
	riskFactors := make([]schema.RiskFactor, 0, len(ids))
	for _, id := range ids {
		rf, ok := schema.RiskFactorFromID[id]
		if !ok {
			rf = schema.RiskFactor{ID: id, Name: string(id)}
		}
		rf.Weight, _ = s.engine.Combined.RiskFactorWeight(id)
		rf.Name = utils.LocalizeOr(loc, fmt.Sprintf("risk_factors.%s.name", rf.ID), rf.Name)
		riskFactors = append(riskFactors, rf)
	}

	c.JSON(http.StatusOK, gin.H{"risk_factors": riskFactors})
}
