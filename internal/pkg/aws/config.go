package aws

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
)

// NewAWSConfig loads the SDK configuration. In local development with an
// endpoint configured, static test credentials are used so LocalStack accepts them.
func NewAWSConfig(ctx context.Context, appConfig *config.Config) (aws.Config, error) {
	if appConfig.IsLocalDev() {
		slog.Info("Routing AWS calls to local endpoint", "endpoint", appConfig.AWS.Endpoint)
		return awsConfig.LoadDefaultConfig(ctx,
			awsConfig.WithRegion(appConfig.AWS.Region),
			awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
		)
	}

	return awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(appConfig.AWS.Region))
}

// NewSQSClient builds an SQS client, honouring a custom endpoint when set.
func NewSQSClient(cfg aws.Config, endpoint string) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
