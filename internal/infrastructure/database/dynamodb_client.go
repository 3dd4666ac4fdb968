package database

import (
	"context"

	appconfig "taller_xpto/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// ConnectDynamoDB creates a DynamoDB client from the application config.
// DYNAMODB_ENDPOINT switches the client to a local instance
// (e.g. http://dynamodb:8000).
func ConnectDynamoDB(appCfg *appconfig.Config) *dynamodb.Client {
	cfg, err := NewDynamoDBConfig(context.Background(), appCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create dynamodb config")
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfig(ctx context.Context, appCfg *appconfig.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		appCfg.AWSAccessKeyID,
		appCfg.AWSSecretAccessKey,
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(appCfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	}

	if appCfg.DynamoDBEndpoint != "" {
		endpoint := appCfg.DynamoDBEndpoint
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
