package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings locates the DynamoDB service. An empty Endpoint uses the
// regional AWS endpoint; set it to talk to DynamoDB Local.
type DynamoDBSettings struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client from settings.
func ConnectDynamoDB(ctx context.Context, s DynamoDBSettings) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, s DynamoDBSettings) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(s.Region),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if s.AccessKeyID != "" && s.SecretAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
