package vault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"dc-go/internal/cards"
	"dc-go/internal/config"
)

// S3Vault stores backups in an S3 bucket, one dump per host:
//
//	<prefix>/<hostID>/dump.json
//	<prefix>/<hostID>/dump.version
type S3Vault struct {
	name     string
	bucket   string
	prefix   string
	client   *s3.Client
	uploader *manager.Uploader
}

// NewS3Vault creates an S3-backed vault from configuration. Credentials
// come from the standard AWS chain unless the config supplies a static
// access key pair.
func NewS3Vault(cfg config.VaultConfig) (*S3Vault, error) {
	ctx := context.Background()

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Vault{
		name:     cfg.Name,
		bucket:   cfg.S3Bucket,
		prefix:   cfg.S3Prefix,
		client:   client,
		uploader: manager.NewUploader(client),
	}, nil
}

func (v *S3Vault) dumpKey(hostID string) string {
	return path.Join(v.prefix, hostID, "dump.json")
}

func (v *S3Vault) versionKey(hostID string) string {
	return path.Join(v.prefix, hostID, "dump.version")
}

// PutBackup uploads a dump for the host, replacing any previous one.
// The multipart uploader handles dumps larger than a single PUT allows.
func (v *S3Vault) PutBackup(hostID string, r io.Reader, size int64, version int64) error {
	ctx := context.Background()

	_, err := v.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(v.bucket),
		Key:         aws.String(v.dumpKey(hostID)),
		Body:        r,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("uploading backup: %w", err)
	}

	_, err = v.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(v.versionKey(hostID)),
		Body:   strings.NewReader(strconv.FormatInt(version, 10)),
	})
	if err != nil {
		return fmt.Errorf("uploading version marker: %w", err)
	}

	return nil
}

// GetBackup downloads the host's dump and writes it to w.
func (v *S3Vault) GetBackup(hostID string, w io.Writer) error {
	ctx := context.Background()

	out, err := v.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(v.dumpKey(hostID)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return fmt.Errorf("backup not found for host: %s", hostID)
		}
		return fmt.Errorf("downloading backup: %w", err)
	}
	defer out.Body.Close()

	if _, err := io.Copy(w, out.Body); err != nil {
		return fmt.Errorf("reading backup body: %w", err)
	}
	return nil
}

// GetBackupVersion returns the backup version marker for a host.
// Returns 0 if no backup has been uploaded.
func (v *S3Vault) GetBackupVersion(hostID string) (int64, error) {
	ctx := context.Background()

	out, err := v.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(v.versionKey(hostID)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return 0, nil
		}
		return 0, fmt.Errorf("downloading version marker: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return 0, fmt.Errorf("reading version marker: %w", err)
	}

	version, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing version: %w", err)
	}
	return version, nil
}

// ValidateSetup verifies the bucket is reachable with the configured credentials.
func (v *S3Vault) ValidateSetup() error {
	_, err := v.client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(v.bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket not accessible: %w", err)
	}
	return nil
}

// Compile-time check that S3Vault implements the cards.Vault interface
var _ cards.Vault = (*S3Vault)(nil)
