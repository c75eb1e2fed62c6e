package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carefinder/carefinder-api/schema"
	"github.com/carefinder/carefinder-api/triage"
)

func (s *Server) assess(c *gin.Context) {
	var params schema.SymptomReport

	// a missing or malformed body is assessed as an empty report
	if err := c.ShouldBindJSON(&params); err != nil {
		log.WithError(err).Debug("assess request body not parseable")
		params = schema.SymptomReport{}
	}

	c.JSON(http.StatusOK, triage.Evaluate(params))
}
