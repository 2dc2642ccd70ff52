package balance_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ppcheck/internal/balance"
	"github.com/temirov/ppcheck/internal/directives"
)

const (
	reporterRootConstant        = "/workspace/core/src"
	ansiEscapeSequenceConstant  = "\x1b["
	reporterBannerWidthConstant = 70
)

func reporterBanner() string {
	return strings.Repeat("=", reporterBannerWidthConstant)
}

func failingReport() balance.FileReport {
	return balance.FileReport{
		Path:         reporterRootConstant + "/engine/render.cpp",
		RelativePath: "engine/render.cpp",
		Issues:       directives.Scan([]string{"#endif", "#ifdef DEBUG"}),
	}
}

func TestReporterRendersFailureReport(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	reporter := balance.NewReporter(outputBuffer, false, false)

	fileReport := failingReport()
	require.NoError(testInstance, reporter.Begin(reporterRootConstant, []string{".cpp", ".h"}))
	require.NoError(testInstance, reporter.ReportFile(balance.FileReport{RelativePath: "clean.h"}))
	require.NoError(testInstance, reporter.ReportFile(fileReport))
	require.NoError(testInstance, reporter.Finish(balance.Summary{
		Root:            reporterRootConstant,
		FilesScanned:    2,
		FilesWithIssues: 1,
		TotalIssues:     len(fileReport.Issues),
		FileReports:     []balance.FileReport{fileReport},
	}))

	expectedOutput := strings.Join([]string{
		reporterBanner(),
		"Checking preprocessor directive pairing in .cpp, .h files under " + reporterRootConstant,
		reporterBanner(),
		"",
		"❌ engine/render.cpp:",
		"   Line 1: #endif - no matching #ifdef/#ifndef",
		"   Line 2: #ifdef DEBUG - missing #endif",
		"",
		reporterBanner(),
		"⚠️ Found 2 issue(s)",
		reporterBanner(),
		"",
	}, "\n")
	require.Equal(testInstance, expectedOutput, outputBuffer.String())
}

func TestReporterRendersSuccessReport(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	reporter := balance.NewReporter(outputBuffer, false, false)

	require.NoError(testInstance, reporter.Begin(reporterRootConstant, []string{".h"}))
	require.NoError(testInstance, reporter.Finish(balance.Summary{Root: reporterRootConstant, FilesScanned: 3}))

	expectedOutput := strings.Join([]string{
		reporterBanner(),
		"Checking preprocessor directive pairing in .h files under " + reporterRootConstant,
		reporterBanner(),
		"",
		reporterBanner(),
		"✅ All preprocessor directives are correctly paired!",
		reporterBanner(),
		"",
	}, "\n")
	require.Equal(testInstance, expectedOutput, outputBuffer.String())
}

func TestReporterQuietModeOmitsBanners(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	reporter := balance.NewReporter(outputBuffer, false, true)

	require.NoError(testInstance, reporter.Begin(reporterRootConstant, []string{".cpp"}))
	require.NoError(testInstance, reporter.ReportFile(failingReport()))
	require.NoError(testInstance, reporter.Finish(balance.Summary{TotalIssues: 2}))

	require.NotContains(testInstance, outputBuffer.String(), reporterBanner())
	require.NotContains(testInstance, outputBuffer.String(), "Found")
	require.True(testInstance, strings.HasPrefix(outputBuffer.String(), "\n❌ engine/render.cpp:\n"))
}

func TestReporterColorToggle(testInstance *testing.T) {
	coloredBuffer := &bytes.Buffer{}
	coloredReporter := balance.NewReporter(coloredBuffer, true, false)
	require.NoError(testInstance, coloredReporter.ReportFile(failingReport()))
	require.NoError(testInstance, coloredReporter.Finish(balance.Summary{TotalIssues: 2}))
	require.Contains(testInstance, coloredBuffer.String(), ansiEscapeSequenceConstant)
	require.Contains(testInstance, coloredBuffer.String(), "engine/render.cpp:")

	plainBuffer := &bytes.Buffer{}
	plainReporter := balance.NewReporter(plainBuffer, false, false)
	require.NoError(testInstance, plainReporter.ReportFile(failingReport()))
	require.NoError(testInstance, plainReporter.Finish(balance.Summary{}))
	require.NotContains(testInstance, plainBuffer.String(), ansiEscapeSequenceConstant)
}
