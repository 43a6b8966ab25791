package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	appconfig "github.com/GoArmGo/DecorApp/internal/config"
)

// Client представляет собой клиент для взаимодействия с MinIO
// (S3-совместимым хранилищем) — собственный бэкенд изображений
// как альтернатива внешнему хостингу.
type Client struct {
	s3Client      *s3.Client
	uploader      *manager.Uploader
	bucketName    string
	publicBaseURL string
	logger        *slog.Logger
}

// NewMinioClient создает и инициализирует новый MinIO Client,
// используя переданную конфигурацию. Отсутствующий бакет создаётся.
func NewMinioClient(cfg *appconfig.Config, logger *slog.Logger) (*Client, error) {
	m := cfg.Minio

	var endpointURL string
	if m.UseSSL {
		endpointURL = fmt.Sprintf("https://%s", m.Endpoint)
	} else {
		endpointURL = fmt.Sprintf("http://%s", m.Endpoint)
	}

	cfgAws, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(m.AccessKeyID, m.SecretAccessKey, "")),
		awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:    endpointURL,
					Source: aws.EndpointSourceCustom,
				}, nil
			})),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for MinIO: %w", err)
	}

	s3Client := s3.NewFromConfig(cfgAws, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	uploader := manager.NewUploader(s3Client)

	// Проверяем существование бакета
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(m.BucketName),
	})

	if err != nil {
		logger.Warn("bucket not found, creating", "bucket", m.BucketName)

		_, createErr := s3Client.CreateBucket(context.TODO(), &s3.CreateBucketInput{
			Bucket: aws.String(m.BucketName),
			// Для MinIO регион указывается явно
			CreateBucketConfiguration: &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(m.Region),
			},
		})
		if createErr != nil {
			return nil, fmt.Errorf("failed to create bucket '%s': %w", m.BucketName, createErr)
		}

		waiter := s3.NewBucketExistsWaiter(s3Client)
		if err := waiter.Wait(context.TODO(), &s3.HeadBucketInput{
			Bucket: aws.String(m.BucketName),
		}, 30*time.Second); err != nil {
			return nil, fmt.Errorf("failed waiting for bucket '%s' to be created: %w", m.BucketName, err)
		}

		logger.Info("bucket created successfully", "bucket", m.BucketName)
	} else {
		logger.Info("bucket already exists", "bucket", m.BucketName)
	}

	publicBaseURL := m.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = endpointURL
	}

	return &Client{
		s3Client:      s3Client,
		uploader:      uploader,
		bucketName:    m.BucketName,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}, nil
}

// UploadImage загружает файл в бакет и возвращает его публичный URL.
// Ключ объекта — UUID с расширением исходного файла.
func (c *Client) UploadImage(ctx context.Context, filename string, reader io.Reader, contentType string) (string, error) {
	objectKey := uuid.New().String() + path.Ext(filename)

	out, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(objectKey),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s to bucket %s: %w", objectKey, c.bucketName, err)
	}

	c.logger.Info("file uploaded to MinIO", "object_key", objectKey, "location", out.Location)
	return fmt.Sprintf("%s/%s/%s", c.publicBaseURL, c.bucketName, objectKey), nil
}

// DeleteImage удаляет файл из бакета по ключу.
func (c *Client) DeleteImage(ctx context.Context, objectKey string) error {
	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file %s from bucket %s: %w", objectKey, c.bucketName, err)
	}
	return nil
}
