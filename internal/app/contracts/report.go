package contracts

import (
	"context"
	"curaflow-service/internal/pkg/dto/responses"
)

// ReportArchive stores the final score report of a completed questionnaire
// in object storage for later retrieval by reporting tools.
type ReportArchive interface {
	ArchiveScoreReport(ctx context.Context, score *responses.Score) (objectName string, err error)
}
