package lambdaversions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"

	"github.com/temirov/lambda-version-cleaner/internal/retention"
)

const (
	functionNotFoundErrorMessageConstant     = "function not found"
	listAliasesErrorTemplateConstant         = "unable to list aliases for %s: %w"
	listVersionsErrorTemplateConstant        = "unable to list versions for %s: %w"
	deleteVersionErrorTemplateConstant       = "unable to delete version %s of %s: %w"
	missingVersionIdentifierTemplateConstant = "version entry %d of %s has no version identifier"
	versionTimestampErrorTemplateConstant    = "version %s of %s: %w"
	aliasPageLoadedMessageConstant           = "alias page loaded"
	versionPageLoadedMessageConstant         = "version page loaded"
	logFieldFunctionNameConstant             = "function_name"
	logFieldPageIndexConstant                = "page_index"
	logFieldPageSizeConstant                 = "page_size"
	maximumPageSizeConstant                  = 10000
)

// ErrFunctionNotFound reports that the provider does not know the requested function.
var ErrFunctionNotFound = errors.New(functionNotFoundErrorMessageConstant)

// API is the subset of the Lambda client used for version maintenance.
type API interface {
	lambda.ListAliasesAPIClient
	lambda.ListVersionsByFunctionAPIClient
	DeleteFunction(executionContext context.Context, input *lambda.DeleteFunctionInput, optionFunctions ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error)
}

// Client lists and deletes published versions of a Lambda function.
type Client struct {
	api      API
	pageSize int32
	logger   *zap.Logger
}

// NewClient wraps the provided Lambda API. A non-positive page size keeps the provider default.
func NewClient(api API, pageSize int, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pageSize > maximumPageSizeConstant {
		pageSize = maximumPageSizeConstant
	}
	if pageSize < 0 {
		pageSize = 0
	}
	return &Client{api: api, pageSize: int32(pageSize), logger: logger}
}

// ListAliases returns every alias of the function across all result pages.
func (client *Client) ListAliases(executionContext context.Context, functionName string) ([]retention.AliasRecord, error) {
	input := &lambda.ListAliasesInput{FunctionName: aws.String(functionName)}
	if client.pageSize > 0 {
		input.MaxItems = aws.Int32(client.pageSize)
	}

	paginator := lambda.NewListAliasesPaginator(client.api, input)

	var aliases []retention.AliasRecord
	for pageIndex := 0; paginator.HasMorePages(); pageIndex++ {
		page, pageError := paginator.NextPage(executionContext)
		if pageError != nil {
			return nil, fmt.Errorf(listAliasesErrorTemplateConstant, functionName, classifyListingError(pageError))
		}

		client.logger.Debug(
			aliasPageLoadedMessageConstant,
			zap.String(logFieldFunctionNameConstant, functionName),
			zap.Int(logFieldPageIndexConstant, pageIndex),
			zap.Int(logFieldPageSizeConstant, len(page.Aliases)),
		)

		for _, alias := range page.Aliases {
			aliases = append(aliases, retention.AliasRecord{
				Name:          aws.ToString(alias.Name),
				TargetVersion: aws.ToString(alias.FunctionVersion),
			})
		}
	}

	return aliases, nil
}

// ListVersions returns every version of the function in provider order.
// Entries without an identifier or with an unparsable timestamp fail the listing.
func (client *Client) ListVersions(executionContext context.Context, functionName string) ([]retention.VersionRecord, error) {
	input := &lambda.ListVersionsByFunctionInput{FunctionName: aws.String(functionName)}
	if client.pageSize > 0 {
		input.MaxItems = aws.Int32(client.pageSize)
	}

	paginator := lambda.NewListVersionsByFunctionPaginator(client.api, input)

	var versions []retention.VersionRecord
	for pageIndex := 0; paginator.HasMorePages(); pageIndex++ {
		page, pageError := paginator.NextPage(executionContext)
		if pageError != nil {
			return nil, fmt.Errorf(listVersionsErrorTemplateConstant, functionName, classifyListingError(pageError))
		}

		client.logger.Debug(
			versionPageLoadedMessageConstant,
			zap.String(logFieldFunctionNameConstant, functionName),
			zap.Int(logFieldPageIndexConstant, pageIndex),
			zap.Int(logFieldPageSizeConstant, len(page.Versions)),
		)

		for _, configuration := range page.Versions {
			record, recordError := toVersionRecord(configuration, len(versions), functionName)
			if recordError != nil {
				return nil, recordError
			}
			versions = append(versions, record)
		}
	}

	return versions, nil
}

// DeleteVersion removes a single qualified version of the function.
func (client *Client) DeleteVersion(executionContext context.Context, functionName string, version string) error {
	_, deleteError := client.api.DeleteFunction(executionContext, &lambda.DeleteFunctionInput{
		FunctionName: aws.String(functionName),
		Qualifier:    aws.String(version),
	})
	if deleteError != nil {
		return fmt.Errorf(deleteVersionErrorTemplateConstant, version, functionName, deleteError)
	}
	return nil
}

func toVersionRecord(configuration types.FunctionConfiguration, position int, functionName string) (retention.VersionRecord, error) {
	identifier := strings.TrimSpace(aws.ToString(configuration.Version))
	if len(identifier) == 0 {
		return retention.VersionRecord{}, fmt.Errorf(missingVersionIdentifierTemplateConstant, position, functionName)
	}

	lastModified, parseError := ParseLastModified(aws.ToString(configuration.LastModified))
	if parseError != nil {
		return retention.VersionRecord{}, fmt.Errorf(versionTimestampErrorTemplateConstant, identifier, functionName, parseError)
	}

	return retention.VersionRecord{Identifier: identifier, LastModified: lastModified}, nil
}

func classifyListingError(listingError error) error {
	var notFound *types.ResourceNotFoundException
	if errors.As(listingError, &notFound) {
		return ErrFunctionNotFound
	}
	return listingError
}
