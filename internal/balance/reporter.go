package balance

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	bannerCharacterConstant        = "="
	bannerWidthConstant            = 70
	bannerTitleTemplateConstant    = "Checking preprocessor directive pairing in %s files under %s\n"
	extensionListSeparatorConstant = ", "
	fileHeaderTemplateConstant     = "❌ %s:"
	issueLineTemplateConstant      = "   %s\n"
	successSummaryConstant         = "✅ All preprocessor directives are correctly paired!"
	failureSummaryTemplateConstant = "⚠️ Found %d issue(s)"
	newlineConstant                = "\n"
)

// Reporter renders the human readable balance report.
type Reporter struct {
	writer       io.Writer
	quiet        bool
	failureColor *color.Color
	warningColor *color.Color
	successColor *color.Color
}

// NewReporter constructs a Reporter writing to writer. Colors are emitted only when colorEnabled is set.
func NewReporter(writer io.Writer, colorEnabled bool, quiet bool) *Reporter {
	reporter := &Reporter{
		writer:       writer,
		quiet:        quiet,
		failureColor: color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		successColor: color.New(color.FgGreen, color.Bold),
	}

	for _, palette := range []*color.Color{reporter.failureColor, reporter.warningColor, reporter.successColor} {
		if colorEnabled {
			palette.EnableColor()
		} else {
			palette.DisableColor()
		}
	}

	return reporter
}

// Begin prints the opening banner.
func (reporter *Reporter) Begin(rootDirectory string, extensions []string) error {
	if reporter.quiet {
		return nil
	}

	if writeError := reporter.writeBannerLine(); writeError != nil {
		return writeError
	}
	if _, writeError := fmt.Fprintf(reporter.writer, bannerTitleTemplateConstant, strings.Join(extensions, extensionListSeparatorConstant), rootDirectory); writeError != nil {
		return writeError
	}
	return reporter.writeBannerLine()
}

// ReportFile prints the issue block for a file. Files without issues produce no output.
func (reporter *Reporter) ReportFile(report FileReport) error {
	if len(report.Issues) == 0 {
		return nil
	}

	if _, writeError := io.WriteString(reporter.writer, newlineConstant); writeError != nil {
		return writeError
	}
	if _, writeError := reporter.failureColor.Fprintf(reporter.writer, fileHeaderTemplateConstant, report.RelativePath); writeError != nil {
		return writeError
	}
	if _, writeError := io.WriteString(reporter.writer, newlineConstant); writeError != nil {
		return writeError
	}

	for _, issue := range report.Issues {
		if _, writeError := fmt.Fprintf(reporter.writer, issueLineTemplateConstant, issue.String()); writeError != nil {
			return writeError
		}
	}
	return nil
}

// Finish prints the closing summary.
func (reporter *Reporter) Finish(summary Summary) error {
	if reporter.quiet {
		return nil
	}

	if _, writeError := io.WriteString(reporter.writer, newlineConstant); writeError != nil {
		return writeError
	}
	if writeError := reporter.writeBannerLine(); writeError != nil {
		return writeError
	}

	var writeError error
	if summary.Clean() {
		_, writeError = reporter.successColor.Fprint(reporter.writer, successSummaryConstant)
	} else {
		_, writeError = reporter.warningColor.Fprintf(reporter.writer, failureSummaryTemplateConstant, summary.TotalIssues)
	}
	if writeError != nil {
		return writeError
	}
	if _, writeError := io.WriteString(reporter.writer, newlineConstant); writeError != nil {
		return writeError
	}

	return reporter.writeBannerLine()
}

func (reporter *Reporter) writeBannerLine() error {
	_, writeError := io.WriteString(reporter.writer, strings.Repeat(bannerCharacterConstant, bannerWidthConstant)+newlineConstant)
	return writeError
}
