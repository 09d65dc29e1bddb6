package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"recipehub/internal/utils"
)

var (
	// AllowImage lists the file extensions accepted for image uploads.
	AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}

	ErrFileTypeNotAllowed = fmt.Errorf("file type not allowed")
)

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load AWS config: %v", err))
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func allowedExtension(ext string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}
	for _, allowed := range allowedTypes {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

func contentTypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// UploadFile stores the file under <dir>/<fileName><ext> and returns the
// object key. The extension comes from the original filename.
func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	ext := filepath.Ext(file.Filename)
	if !allowedExtension(ext, allowedTypes) {
		return "", ErrFileTypeNotAllowed
	}

	objectKey := fmt.Sprintf("%s/%s%s", strings.Trim(dir, "/"), fileName, ext)
	if err := a.putObject(objectKey, file, ext); err != nil {
		return "", err
	}
	return objectKey, nil
}

// UpdateFile overwrites an existing object in place, keeping its key.
func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	ext := filepath.Ext(file.Filename)
	if !allowedExtension(ext, allowedTypes) {
		return "", ErrFileTypeNotAllowed
	}

	if err := a.putObject(objectKey, file, ext); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) putObject(objectKey string, file *multipart.FileHeader, ext string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:       aws.String(a.bucket),
		Key:          aws.String(objectKey),
		Body:         src,
		ContentType:  aws.String(contentTypeForExtension(ext)),
		CacheControl: aws.String("max-age=31536000"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}
	return nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", objectKey, err)
	}
	return nil
}

func (a *awsS3) publicPrefix() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return a.publicPrefix() + strings.TrimLeft(objectKey, "/")
}

// GetObjectKeyFromLink reverses GetPublicLinkKey. Links outside this
// bucket's public prefix yield an empty key.
func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := a.publicPrefix()
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
