package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3ImageStore persists user-submitted images and returns the public URL
// they can be fetched from.
type S3ImageStore struct {
	client *s3.Client
	bucket string
	cdnURL string
}

func NewS3ImageStore(ctx context.Context, region, bucket, cdnURL string) (*S3ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	return &S3ImageStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		cdnURL: strings.TrimRight(cdnURL, "/"),
	}, nil
}

// UploadMealImage stores a food photo under a key derived from the meal
// record's identifier and the image's original extension.
func (s *S3ImageStore) UploadMealImage(ctx context.Context, mealID uint, dataURI string) (string, error) {
	contentType, ext, data, err := DecodeImageDataURI(dataURI)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("food-images/food_%d%s", mealID, ext)
	return s.put(ctx, key, contentType, data)
}

// UploadAvatar stores a profile picture under a random key.
func (s *S3ImageStore) UploadAvatar(ctx context.Context, dataURI string) (string, error) {
	contentType, ext, data, err := DecodeImageDataURI(dataURI)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("avatars/%s%s", uuid.NewString(), ext)
	return s.put(ctx, key, contentType, data)
}

func (s *S3ImageStore) put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.cdnURL, key), nil
}

// DecodeImageDataURI splits a "data:<mime>;base64,<data>" URI into its
// content type, a file extension and the decoded bytes.
func DecodeImageDataURI(dataURI string) (contentType, ext string, data []byte, err error) {
	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image") {
		return "", "", nil, fmt.Errorf("invalid base64 image")
	}

	mediaType := strings.SplitN(parts[0], ":", 2)[1]    // "image/jpeg;base64"
	contentType = strings.SplitN(mediaType, ";", 2)[0]  // "image/jpeg"

	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else if sub := strings.SplitN(contentType, "/", 2); len(sub) == 2 {
			ext = "." + sub[1]
		}
	}

	data, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return contentType, ext, data, nil
}
