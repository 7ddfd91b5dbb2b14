package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for catalogue documents stored in AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates an S3-based catalogue loader.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 catalogue loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Load reads a catalogue JSON document from S3. The key parameter should be
// the full S3 key including any prefix.
func (l *s3Loader) Load(ctx context.Context, key string) (Document, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading catalogue from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get catalogue object from S3")
		return Document{}, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read S3 object %s: %w", key, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to parse catalogue object")
		return Document{}, fmt.Errorf("failed to parse catalogue object %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("products", len(doc.Products)).
		Int("orders", len(doc.Orders)).
		Msg("catalogue loaded from S3")

	return doc, nil
}

// fallbackLoader tries S3 first and falls back to the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Prefix   string
	s3Enabled  bool
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then falls back to
// the local file system. If s3Loader is nil, only the file loader is used.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Prefix string, s3Enabled bool, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Prefix:   s3Prefix,
		s3Enabled:  s3Enabled,
		logger:     logger.With().Str("component", "fallback-catalog-loader").Logger(),
	}
}

// Load attempts S3 first (prefixing the path with the configured key prefix)
// and falls back to the file system on any failure.
func (l *fallbackLoader) Load(ctx context.Context, path string) (Document, error) {
	if l.s3Enabled && l.s3Loader != nil {
		s3Key := l.s3Prefix + path

		doc, err := l.s3Loader.Load(ctx, s3Key)
		if err == nil {
			return doc, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", s3Key).
			Msg("failed to load catalogue from S3, falling back to local file system")
	}

	return l.fileLoader.Load(ctx, path)
}
