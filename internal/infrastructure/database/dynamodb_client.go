package database

import (
	"context"
	"fmt"

	appconfig "mensalidade_pix/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client shared by the repositories.
// It is built once at startup and injected; nothing here is global.
func ConnectDynamoDB(ctx context.Context, store appconfig.DocumentStoreConfig) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, store appconfig.DocumentStoreConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		store.AccessKeyID,
		store.SecretAccessKey,
		store.SessionToken,
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(store.Region),
		config.WithCredentialsProvider(creds),
	}

	if store.Endpoint != "" {
		endpoint := store.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
