package lambdaversions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

const (
	awsConfigurationErrorTemplateConstant = "unable to load AWS configuration: %w"
	missingRegionErrorMessageConstant     = "region must be provided"
)

// Settings controls how the Lambda API client is constructed.
type Settings struct {
	Region      string
	EndpointURL string
}

// NewLambdaAPI builds a Lambda client from the default AWS credential chain.
func NewLambdaAPI(executionContext context.Context, settings Settings) (*lambda.Client, error) {
	region := strings.TrimSpace(settings.Region)
	if len(region) == 0 {
		return nil, fmt.Errorf(awsConfigurationErrorTemplateConstant, errors.New(missingRegionErrorMessageConstant))
	}

	awsConfiguration, loadError := config.LoadDefaultConfig(executionContext, config.WithRegion(region))
	if loadError != nil {
		return nil, fmt.Errorf(awsConfigurationErrorTemplateConstant, loadError)
	}

	endpointURL := strings.TrimSpace(settings.EndpointURL)

	return lambda.NewFromConfig(awsConfiguration, func(options *lambda.Options) {
		if len(endpointURL) > 0 {
			options.BaseEndpoint = aws.String(endpointURL)
		}
	}), nil
}
