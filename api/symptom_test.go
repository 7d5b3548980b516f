package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/autonomy-assessment/schema"
	"github.com/bitmark-inc/autonomy-assessment/score"
	"github.com/bitmark-inc/autonomy-assessment/utils"
)

func TestGetSymptoms(t *testing.T) {
	if err := utils.InitI18NBundle("../i18n"); err != nil {
		t.Fatal(err)
	}

	s, _ := newTestServer(t, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.getSymptoms)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/?lang=zh-TW", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.Symptom
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp["symptoms"], len(schema.Symptoms))
	assert.Equal(t, schema.Fever, jResp["symptoms"][0].ID)
	assert.Equal(t, "發燒", jResp["symptoms"][0].Name)
	assert.Equal(t, schema.LowSeverity, jResp["symptoms"][0].Tier)

	// untranslated language falls back to english
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "fr")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "Fever", jResp["symptoms"][0].Name)
}

func TestGetRiskFactors(t *testing.T) {
	s, _ := newTestServer(t, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.getRiskFactors)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.RiskFactor
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp["risk_factors"], 8)
	assert.Equal(t, schema.Pneumonia, jResp["risk_factors"][0].ID)
	assert.Equal(t, 0.728, jResp["risk_factors"][0].Weight)
}

func TestGetRiskFactorsConfigured(t *testing.T) {
	c := score.DefaultConfig()
	c.Combined.RiskFactorWeights[schema.Pneumonia] = 0.5
	c.Combined.RiskFactorWeights["asthma"] = 0.05
	s, _ := newTestServerWithConfig(t, nil, c)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.getRiskFactors)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.RiskFactor
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))

	riskFactors := jResp["risk_factors"]
	assert.Len(t, riskFactors, len(schema.RiskFactors)+1)
	assert.Equal(t, schema.Pneumonia, riskFactors[0].ID)
	assert.Equal(t, 0.5, riskFactors[0].Weight)

	last := riskFactors[len(riskFactors)-1]
	assert.Equal(t, schema.RiskFactorType("asthma"), last.ID)
	assert.Equal(t, "asthma", last.Name)
	assert.Equal(t, 0.05, last.Weight)
}
