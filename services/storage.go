package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/config"
)

// MaxFileSize is the upload size ceiling for thumbnail images.
const MaxFileSize = 5 * 1024 * 1024 // 5MB

// DefaultUploadFolder is where thumbnails land when no folder is given.
const DefaultUploadFolder = "thumbnails"

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// AllowedMimeTypes lists the accepted upload content types, for error messages.
func AllowedMimeTypes() []string {
	types := make([]string, 0, len(allowedMimeTypes))
	for t := range allowedMimeTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ValidateFile checks the size ceiling and the allowed MIME-type set. Pure
// function, no I/O: callers run it before any network call is made.
func ValidateFile(size int64, mimeType string) (bool, string) {
	if size > MaxFileSize {
		return false, "File size must be less than 5MB"
	}
	if !allowedMimeTypes[strings.ToLower(mimeType)] {
		return false, "File type must be one of: " + strings.Join(AllowedMimeTypes(), ", ")
	}
	return true, ""
}

// Storage uploads and removes bucket objects through the storage service's
// S3-compatible endpoint and derives the public URLs the front end embeds.
type Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        zerolog.Logger
}

// NewStorage builds a Storage from configuration. Required settings:
// STORAGE_S3_ENDPOINT, STORAGE_ACCESS_KEY_ID, STORAGE_SECRET_ACCESS_KEY and
// STORAGE_PUBLIC_URL (the base under which objects are publicly served).
func NewStorage(ctx context.Context, cfg map[string]string) (*Storage, error) {
	endpoint := config.GetString(cfg, "STORAGE_S3_ENDPOINT", "")
	accessKey := config.GetString(cfg, "STORAGE_ACCESS_KEY_ID", "")
	secretKey := config.GetString(cfg, "STORAGE_SECRET_ACCESS_KEY", "")
	publicBaseURL := config.GetString(cfg, "STORAGE_PUBLIC_URL", "")
	bucket := config.GetString(cfg, "STORAGE_BUCKET", "project-thumbnails")

	if endpoint == "" || accessKey == "" || secretKey == "" || publicBaseURL == "" {
		return nil, fmt.Errorf("storage configuration incomplete: STORAGE_S3_ENDPOINT, STORAGE_ACCESS_KEY_ID, STORAGE_SECRET_ACCESS_KEY and STORAGE_PUBLIC_URL are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.GetString(cfg, "STORAGE_REGION", "us-east-1")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &Storage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        log.With().Str("service", "storage").Logger(),
	}, nil
}

// Upload stores the file under a collision-resistant generated name and
// returns the object's public URL. The put is conditional so an existing
// object is never overwritten.
func (s *Storage) Upload(ctx context.Context, body io.Reader, size int64, filename, contentType, folder string) (string, error) {
	if folder == "" {
		folder = DefaultUploadFolder
	}
	objectPath := objectName(folder, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectPath),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("max-age=3600"),
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("path", objectPath).Msg("upload failed")
		return "", err
	}

	s.logger.Info().Str("path", objectPath).Msg("upload successful")
	return s.PublicURL(objectPath), nil
}

// Delete removes one object by path. Callers treat failures as best-effort:
// a failed delete of a stale thumbnail must not block the flow replacing it.
func (s *Storage) Delete(ctx context.Context, objectPath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectPath),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("path", objectPath).Msg("delete failed")
		return err
	}
	return nil
}

// PublicURL builds the public URL for an object path.
func (s *Storage) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, objectPath)
}

// PathFromURL extracts the object path after the bucket segment of a public
// URL. Returns "" when the URL does not parse or the bucket marker is absent.
func (s *Storage) PathFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.TrimPrefix(parsed.Path, "/"), "/")
	for i, segment := range segments {
		if segment == s.bucket && i < len(segments)-1 {
			return strings.Join(segments[i+1:], "/")
		}
	}
	return ""
}

// objectName builds `{folder}/{timestamp}-{token}{ext}` from the original
// filename. The extension is kept, everything else is generated.
func objectName(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), randomToken(), ext)
}

func randomToken() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to time
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
