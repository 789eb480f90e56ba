package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"booking-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ImageStore holds the uploaded venue and artist images.
type ImageStore interface {
	// Owns reports whether link points at an object in this store.
	Owns(link string) bool
	DeleteByURL(ctx context.Context, link string) error
}

// imageFolders are the object prefixes uploads may target.
var imageFolders = map[string]bool{
	"venues":  true,
	"artists": true,
}

const presignExpiry = 15 * time.Minute

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// GeneratePresignedURL returns an upload URL for a new image in folder and
// the public link the image will have once uploaded.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, folder, filename string) (string, string, error) {
	objectPath, err := newObjectPath(folder, filename)
	if err != nil {
		return "", "", err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), s.publicURL + "/" + objectPath, nil
}

func (s *MinIOService) Owns(link string) bool {
	_, ok := s.objectFromURL(link)
	return ok
}

func (s *MinIOService) DeleteByURL(ctx context.Context, link string) error {
	objectPath, ok := s.objectFromURL(link)
	if !ok {
		return fmt.Errorf("image %q is not stored in bucket %s", link, s.bucket)
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}

// objectFromURL extracts the object path from a public image link.
func (s *MinIOService) objectFromURL(link string) (string, bool) {
	if link == "" || s.publicURL == "" {
		return "", false
	}
	rest, ok := strings.CutPrefix(link, s.publicURL+"/")
	if !ok {
		return "", false
	}
	if i := strings.IndexAny(rest, "?#"); i != -1 {
		rest = rest[:i]
	}
	rest, err := url.PathUnescape(rest)
	if err != nil || rest == "" {
		return "", false
	}
	return rest, true
}

func newObjectPath(folder, filename string) (string, error) {
	if !imageFolders[folder] {
		return "", fmt.Errorf("unknown image folder %q", folder)
	}
	filename = path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if filename == "." || filename == "/" || filename == "" {
		return "", fmt.Errorf("filename is required")
	}

	ext := path.Ext(filename)
	nameWithoutExt := strings.TrimSuffix(filename, ext)
	return fmt.Sprintf("%s/%s_%s%s", folder, nameWithoutExt, uuid.New().String()[:8], ext), nil
}
