package cleaner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/lambda-version-cleaner/internal/cleaner"
)

const testPromptConstant = "Do you want to continue? (Y/N) "

func TestIOConfirmationPrompterConfirm(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name      string
		input     string
		confirmed bool
	}{
		{name: "lowercase_y", input: "y\n", confirmed: true},
		{name: "uppercase_y", input: "Y\n", confirmed: true},
		{name: "surrounding_whitespace", input: "  y \r\n", confirmed: true},
		{name: "y_without_newline", input: "y", confirmed: true},
		{name: "yes_is_not_accepted", input: "yes\n", confirmed: false},
		{name: "n", input: "n\n", confirmed: false},
		{name: "empty_line", input: "\n", confirmed: false},
		{name: "end_of_input", input: "", confirmed: false},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			outputBuffer := &strings.Builder{}
			prompter := cleaner.NewIOConfirmationPrompter(strings.NewReader(testCase.input), outputBuffer)

			confirmed, confirmError := prompter.Confirm(testPromptConstant)
			require.NoError(subTest, confirmError)
			require.Equal(subTest, testCase.confirmed, confirmed)
			require.Equal(subTest, testPromptConstant, outputBuffer.String())
		})
	}
}
