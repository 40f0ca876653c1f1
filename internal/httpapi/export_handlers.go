package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskplanner/internal/service"
)

func (s *Server) handleExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.export.WriteCSV(c.Request.Context(), currentUserID(c), &buf); err != nil {
		fail(c, err)
		return
	}

	attachment(c, service.Filename("csv", s.now()))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) handleExportJSON(c *gin.Context) {
	records, err := s.export.ExportJSON(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fail(c, err)
		return
	}

	attachment(c, service.Filename("json", s.now()))
	c.Data(http.StatusOK, "application/json", body)
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
