package utils

import (
	"fmt"
	"healthtrack-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateReportObjectName builds the archive key <reportType>/<patientID>/<uuid>.pdf.
func GenerateReportObjectName(reportType, patientID string) string {
	return fmt.Sprintf("%s/%s/%s%s", reportType, sanitizeObjectSegment(patientID), uuid.NewString(), constvars.ReportFileExtension)
}

func sanitizeObjectSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	segment = strings.ReplaceAll(segment, "/", "_")
	segment = strings.ReplaceAll(segment, "..", "_")
	if segment == "" {
		return "unknown"
	}
	return segment
}
