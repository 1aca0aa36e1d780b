package cleaner

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/lambda-version-cleaner/internal/lambdaversions"
)

// ProviderResolver creates the version provider used by the command.
type ProviderResolver interface {
	Resolve(executionContext context.Context, logger *zap.Logger, options Options) (VersionProvider, error)
}

// DefaultProviderResolver builds an AWS Lambda backed provider from the default credential chain.
type DefaultProviderResolver struct{}

// Resolve constructs a lambdaversions.Client for the configured region and endpoint.
func (DefaultProviderResolver) Resolve(executionContext context.Context, logger *zap.Logger, options Options) (VersionProvider, error) {
	api, apiError := lambdaversions.NewLambdaAPI(executionContext, lambdaversions.Settings{
		Region:      options.Region,
		EndpointURL: options.EndpointURL,
	})
	if apiError != nil {
		return nil, apiError
	}
	return lambdaversions.NewClient(api, options.PageSize, logger), nil
}
