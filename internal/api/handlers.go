package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/vitalsense/internal/checker"
	"github.com/Skufu/vitalsense/internal/history"
	"github.com/Skufu/vitalsense/internal/knowledge"
	"github.com/Skufu/vitalsense/internal/symptoms"
)

type handler struct {
	svc     *checker.Service
	logger  *zap.Logger
	metrics *Metrics
}

type analyzeRequest struct {
	Symptoms []string             `json:"symptoms"`
	Vitals   *symptoms.VitalSigns `json:"vitals"`
}

type symptomInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r analyzeRequest) validate() []string {
	var problems []string
	if r.Symptoms == nil {
		problems = append(problems, "symptoms is required")
	}
	if v := r.Vitals; v != nil {
		fields := []struct {
			name  string
			value *float64
		}{
			{"systolic blood pressure", v.Systolic},
			{"diastolic blood pressure", v.Diastolic},
			{"heart rate", v.HeartRate},
			{"temperature", v.Temperature},
			{"blood glucose", v.BloodGlucose},
			{"weight", v.Weight},
		}
		for _, f := range fields {
			if f.value != nil && *f.value <= 0 {
				problems = append(problems, fmt.Sprintf("%s must be positive", f.name))
			}
		}
	}
	return problems
}

// bind decodes and validates the request, writing the error response
// itself when it returns false.
func bind(c *gin.Context, req *analyzeRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return false
	}
	if problems := req.validate(); len(problems) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"details": problems,
		})
		return false
	}
	return true
}

func (h *handler) listSymptoms(c *gin.Context) {
	ids := h.svc.Engine().Knowledge().Symptoms()
	out := make([]symptomInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, symptomInfo{ID: id, Name: knowledge.DisplayName(id)})
	}
	c.JSON(http.StatusOK, gin.H{"symptoms": out})
}

func (h *handler) getCondition(c *gin.Context) {
	cond, err := h.svc.Engine().Knowledge().Condition(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "condition not found"})
		return
	}
	c.JSON(http.StatusOK, cond)
}

func (h *handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if !bind(c, &req) {
		return
	}
	result := h.svc.Analyze(req.Symptoms, req.Vitals)
	h.metrics.ObserveAnalysis(string(result.Risk))
	c.JSON(http.StatusOK, result)
}

func (h *handler) createCheck(c *gin.Context) {
	var req analyzeRequest
	if !bind(c, &req) {
		return
	}

	result, entry, err := h.svc.Check(c.Request.Context(), c.Param("id"), req.Symptoms, req.Vitals)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.ObserveAnalysis(string(result.Risk))
	c.JSON(http.StatusCreated, gin.H{"check": entry, "analysis": result})
}

func (h *handler) listHistory(c *gin.Context) {
	entries, err := h.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjectId": c.Param("id"), "checks": entries})
}

func (h *handler) insights(c *gin.Context) {
	res, err := h.svc.Insights(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.Insights.Inc()
	c.JSON(http.StatusOK, res)
}

func (h *handler) fail(c *gin.Context, err error) {
	if errors.Is(err, history.ErrInvalidSubject) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_ = c.Error(err)
	h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
