package cleaner

import (
	"fmt"
	"io"
	"strings"

	"github.com/temirov/lambda-version-cleaner/internal/retention"
)

const (
	scanningHeaderTemplateConstant      = "Getting versions for %s %d days or older\n"
	aliasExclusionTemplateConstant      = "\t- Version %s is aliased as %s. WON'T be deleted\n"
	protectedExclusionTemplateConstant  = "\t- Version %s is the protected current version. WON'T be deleted\n"
	configuredExclusionTemplateConstant = "\t- Version %s is a protected version. WON'T be deleted\n"
	nothingOlderTemplateConstant        = "No Lambda function versions for %s older than %d days. No changes made.\n"
	nothingToPurgeMessageConstant       = "Nothing to list or delete. Exiting. No changes made.\n"
	dryRunListTemplateConstant          = "\nThe following versions of %s can be deleted.\n%s\n"
	destructiveListTemplateConstant     = "\nThe following versions of %s WILL be PERMANENTLY DELETED.\n%s\n"
	confirmationPromptConstant          = "Do you want to continue? (Y/N) "
	declinedMessageConstant             = "Exiting. No changes made\n"
	deletionHeaderMessageConstant       = "DELETING LAMBDA VERSIONS:\n"
	deletionSummaryTemplateConstant     = "Deleted %d of %d versions of %s; %d failed.\n"
	versionListSeparatorConstant        = ", "
	versionListTemplateConstant         = "[%s]"
)

type reporter struct {
	writer io.Writer
}

func (printer reporter) nothingOlder(functionName string, days int) {
	fmt.Fprintf(printer.writer, nothingOlderTemplateConstant, functionName, days)
}

func (printer reporter) scanning(functionName string, days int, exclusions []retention.Exclusion) {
	fmt.Fprintf(printer.writer, scanningHeaderTemplateConstant, functionName, days)
	for _, exclusion := range exclusions {
		switch exclusion.Reason {
		case retention.ExclusionReasonProtected:
			if exclusion.Identifier == retention.DefaultProtectedMarker {
				fmt.Fprintf(printer.writer, protectedExclusionTemplateConstant, exclusion.Identifier)
				continue
			}
			fmt.Fprintf(printer.writer, configuredExclusionTemplateConstant, exclusion.Identifier)
		default:
			fmt.Fprintf(printer.writer, aliasExclusionTemplateConstant, exclusion.Identifier, exclusion.AliasName)
		}
	}
}

func (printer reporter) nothingToPurge() {
	fmt.Fprint(printer.writer, nothingToPurgeMessageConstant)
}

func (printer reporter) dryRunList(functionName string, purgeList []string) {
	fmt.Fprintf(printer.writer, dryRunListTemplateConstant, functionName, formatVersionList(purgeList))
}

func (printer reporter) destructiveList(functionName string, purgeList []string) {
	fmt.Fprintf(printer.writer, destructiveListTemplateConstant, functionName, formatVersionList(purgeList))
}

func (printer reporter) declined() {
	fmt.Fprint(printer.writer, declinedMessageConstant)
}

func (printer reporter) deletionHeader() {
	fmt.Fprint(printer.writer, deletionHeaderMessageConstant)
}

func (printer reporter) deletionSummary(functionName string, report DeletionReport) {
	fmt.Fprintf(printer.writer, deletionSummaryTemplateConstant, len(report.Succeeded()), len(report.Results), functionName, len(report.Failed()))
}

func formatVersionList(versions []string) string {
	return fmt.Sprintf(versionListTemplateConstant, strings.Join(versions, versionListSeparatorConstant))
}
