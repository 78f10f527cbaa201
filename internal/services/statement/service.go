package statement

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"bank_clients/internal/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type S3Client interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

type Result struct {
	Bucket    string
	Key       string
	SizeBytes int64
	URL       string
	ExpiresAt time.Time
}

type Service struct {
	Client S3Client
	Bucket string
	TTL    time.Duration
}

func NewService(cli S3Client, bucket string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Service{Client: cli, Bucket: bucket, TTL: ttl}
}

// Export renders the profile into an xlsx statement, stores it in S3 and
// returns a presigned download URL.
func (s *Service) Export(ctx context.Context, profile *models.ClientProfile) (Result, error) {
	t0 := time.Now()

	buf, err := renderWorkbook(profile)
	if err != nil {
		log.Printf("[STMT][ERR] render: %v", err)
		return Result{}, fmt.Errorf("render statement: %w", err)
	}

	key := fmt.Sprintf("statements/%d-%s.xlsx", time.Now().UnixNano(), uuid.NewString())

	info, err := s.Client.PutObject(ctx, s.Bucket, key,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: contentTypeXLSX})
	if err != nil {
		log.Printf("[STMT][ERR] s3 put: %v", err)
		return Result{}, fmt.Errorf("s3 put: %w", err)
	}

	u, err := s.Client.PresignedGetObject(ctx, s.Bucket, key, s.TTL, nil)
	if err != nil {
		log.Printf("[STMT][ERR] presign: %v", err)
		return Result{}, fmt.Errorf("presign: %w", err)
	}

	log.Printf("[STMT][OK] client_id=%d bucket=%q key=%q size=%d took=%s",
		profile.ClientID, s.Bucket, key, info.Size, time.Since(t0))

	return Result{
		Bucket:    s.Bucket,
		Key:       key,
		SizeBytes: info.Size,
		URL:       u.String(),
		ExpiresAt: time.Now().Add(s.TTL),
	}, nil
}

func renderWorkbook(profile *models.ClientProfile) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	middle := ""
	if profile.MiddleName != nil {
		middle = *profile.MiddleName
	}

	rows := [][]any{
		{"Field", "Value"},
		{"profile_id", profile.ProfileID},
		{"client_id", profile.ClientID},
		{"last_name", profile.LastName},
		{"first_name", profile.FirstName},
		{"middle_name", middle},
		{"gender", profile.Gender},
		{"age", profile.Age},
		{"marital_status", profile.MaritalStatus},
		{"account_number", profile.AccountNumber},
		{"capital", profile.Capital},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
