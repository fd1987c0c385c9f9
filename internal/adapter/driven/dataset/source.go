package dataset

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
)

// s3API é o subconjunto do cliente S3 usado para baixar o dataset.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// newS3Client cria um cliente S3 a partir da configuração padrão da AWS,
// usando o perfil compartilhado quando informado.
func newS3Client(ctx context.Context, profile string) (s3API, error) {
	home, _ := os.UserHomeDir()
	if err := checkProfile(home, profile); err != nil {
		return nil, err
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}
	return s3.NewFromConfig(cfg), nil
}

// parseS3Location divide "s3://bucket/key" em bucket e key.
func parseS3Location(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", types.ErrUnsupportedSource, location, err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s: expected s3://bucket/key", types.ErrUnsupportedSource, location)
	}
	return bucket, key, nil
}

// open abre o dataset local ou remoto.
func (r *CSVDatasetRepository) open(ctx context.Context, location, awsProfile string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		bucket, key, err := parseS3Location(location)
		if err != nil {
			return nil, err
		}

		client, err := r.s3Client(ctx, awsProfile)
		if err != nil {
			return nil, err
		}

		out, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("error downloading %s: %w", location, err)
		}
		return out.Body, nil
	case strings.Contains(location, "://"):
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedSource, location)
	default:
		file, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("error opening dataset: %w", err)
		}
		return file, nil
	}
}
