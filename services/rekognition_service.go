package services

import (
	"context"

	"github.com/pratikonly/Health-Nexus/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService recognizes food in photos via AWS Rekognition label
// detection. It satisfies VisionProvider.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(ctx context.Context, region string) (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectFood returns the top label for a base64-encoded image, or an empty
// string when nothing was recognized with enough confidence.
func (r *RekognitionService) DetectFood(ctx context.Context, imageDataURI string) (string, error) {
	_, _, data, err := utils.DecodeImageDataURI(imageDataURI)
	if err != nil {
		return "", err
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return "", err
	}

	if len(out.Labels) == 0 || out.Labels[0].Name == nil {
		return "", nil
	}
	return *out.Labels[0].Name, nil
}
