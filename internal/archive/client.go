package archive

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	rc "github.com/dmitrijs2005/recarchiver/internal/config"
)

// Constructors are package variables so tests can replace them.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newTransferManager = func(c *s3.Client, optFns ...func(*manager.Uploader)) transferAPI {
		return manager.NewUploader(c, optFns...)
	}
)

// transferAPI is the part of *manager.Uploader used here.
type transferAPI interface {
	Upload(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// newS3Client builds an S3 client from c. Static credentials are used only
// when both keys are set; otherwise the SDK default chain applies.
func newS3Client(ctx context.Context, c *rc.Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(c.S3Region),
	}
	if c.S3AccessKeyID != "" && c.S3SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.S3AccessKeyID, c.S3SecretAccessKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.S3BaseEndpoint)
		}
		o.UsePathStyle = c.S3UsePathStyle
	}), nil
}
