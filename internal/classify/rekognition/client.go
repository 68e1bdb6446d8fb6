package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"vision-backend/internal/classify"
)

// Client implements classify.Client using Amazon Rekognition DetectLabels.
type Client struct {
	api *rekognition.Client
}

// New constructs a Rekognition-backed classifier.
func New(ctx context.Context, region string) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Client{api: rekognition.NewFromConfig(cfg)}, nil
}

// DetectLabels performs a single DetectLabels call against the object in S3.
// No retry: callers needing resilience wrap this client.
func (c *Client) DetectLabels(ctx context.Context, req classify.Request) (classify.Result, error) {
	out, err := c.api.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(req.Bucket),
				Name:   aws.String(req.Key),
			},
		},
		MaxLabels:     aws.Int32(req.MaxLabels),
		MinConfidence: aws.Float32(float32(req.MinConfidence)),
	})
	if err != nil {
		return classify.Result{}, fmt.Errorf("rekognition detect labels bucket=%s key=%s: %w", req.Bucket, req.Key, err)
	}

	labels := make([]classify.Label, 0, len(out.Labels))
	for _, label := range out.Labels {
		labels = append(labels, classify.Label{
			Name:       aws.ToString(label.Name),
			Confidence: float64(aws.ToFloat32(label.Confidence)),
		})
	}

	requestID, _ := awsmiddleware.GetRequestIDMetadata(out.ResultMetadata)

	return classify.Result{Labels: labels, RequestID: requestID}, nil
}

var _ classify.Client = (*Client)(nil)
