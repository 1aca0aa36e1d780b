package lambdaversions

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

const (
	apiFailureTemplateConstant    = "%s: %s"
	unknownFailureMessageConstant = "unknown error"
)

// DescribeFailure renders an error for per-version reporting, preferring the provider error code.
func DescribeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}

	var apiError smithy.APIError
	if errors.As(failure, &apiError) {
		return fmt.Sprintf(apiFailureTemplateConstant, apiError.ErrorCode(), apiError.ErrorMessage())
	}

	return failure.Error()
}
