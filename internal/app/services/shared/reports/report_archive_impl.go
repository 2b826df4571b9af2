package reports

import (
	"bytes"
	"context"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/dto/responses"
	"curaflow-service/internal/pkg/exceptions"
	"curaflow-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

type minioReportArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioReportArchive(minioClient *minio.Client, bucketName string) contracts.ReportArchive {
	return &minioReportArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioReportArchive) ArchiveScoreReport(ctx context.Context, score *responses.Score) (string, error) {
	body, err := json.Marshal(score)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := utils.GenerateReportObjectName(score.Instrument, score.QuestionnaireID)
	_, err = m.MinioClient.PutObject(ctx, m.BucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}
