package balance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/ppcheck/internal/directives"
)

const (
	rootNotFoundTemplateConstant         = "%w: %s"
	rootInspectionErrorTemplateConstant  = "unable to inspect root directory %s: %w"
	rootResolutionErrorTemplateConstant  = "unable to resolve root directory %s: %w"
	discoveryErrorTemplateConstant       = "unable to enumerate sources under %s: %w"
	sourceOpenErrorTemplateConstant      = "unable to open source %s: %w"
	sourceScanErrorTemplateConstant      = "unable to scan source %s: %w"
	reportWriteErrorTemplateConstant     = "unable to write report: %w"
	checkStartedMessageConstant          = "checking preprocessor directive balance"
	sourcesDiscoveredMessageConstant     = "sources discovered"
	sourceScannedMessageConstant         = "source scanned"
	checkCompletedMessageConstant        = "preprocessor directive check completed"
	logFieldRootConstant                 = "root"
	logFieldExtensionsConstant           = "extensions"
	logFieldJobsConstant                 = "jobs"
	logFieldSourceCountConstant          = "source_count"
	logFieldSourcePathConstant           = "source_path"
	logFieldIssueCountConstant           = "issue_count"
	logFieldFilesWithIssuesCountConstant = "files_with_issues"
)

// Service coordinates source discovery, scanning, and reporting.
type Service struct {
	discoverer   SourceDiscoverer
	fileSystem   FileSystem
	logger       *zap.Logger
	outputWriter io.Writer
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer SourceDiscoverer, fileSystem FileSystem, logger *zap.Logger, outputWriter io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	return &Service{
		discoverer:   ResolveSourceDiscoverer(discoverer),
		fileSystem:   ResolveFileSystem(fileSystem),
		logger:       logger,
		outputWriter: outputWriter,
	}
}

// Run scans every matching source beneath options.Root, prints the report and
// returns the aggregated summary. Balance issues are part of the summary; the
// returned error is reserved for setup and I/O failures.
func (service *Service) Run(executionContext context.Context, options CommandOptions) (Summary, error) {
	rootDirectory, rootError := service.resolveRoot(options.Root)
	if rootError != nil {
		return Summary{}, rootError
	}

	extensions := NormalizeExtensions(options.Extensions)
	if len(extensions) == 0 {
		extensions = DefaultCommandConfiguration().Extensions
	}

	jobs := options.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	service.logger.Info(
		checkStartedMessageConstant,
		zap.String(logFieldRootConstant, rootDirectory),
		zap.Strings(logFieldExtensionsConstant, extensions),
		zap.Int(logFieldJobsConstant, jobs),
	)

	sourcePaths, discoveryError := service.discoverer.DiscoverSources(rootDirectory, extensions)
	if discoveryError != nil {
		return Summary{}, fmt.Errorf(discoveryErrorTemplateConstant, rootDirectory, discoveryError)
	}

	service.logger.Debug(sourcesDiscoveredMessageConstant, zap.Int(logFieldSourceCountConstant, len(sourcePaths)))

	reporter := NewReporter(service.outputWriter, options.Color, options.Quiet)
	if beginError := reporter.Begin(rootDirectory, extensions); beginError != nil {
		return Summary{}, fmt.Errorf(reportWriteErrorTemplateConstant, beginError)
	}

	fileReports, scanError := service.scanSources(executionContext, rootDirectory, sourcePaths, jobs)
	if scanError != nil {
		return Summary{}, scanError
	}

	summary := Summary{
		Root:         rootDirectory,
		FilesScanned: len(fileReports),
		FileReports:  fileReports,
	}
	for _, fileReport := range fileReports {
		if len(fileReport.Issues) == 0 {
			continue
		}
		summary.FilesWithIssues++
		summary.TotalIssues += len(fileReport.Issues)
		if reportError := reporter.ReportFile(fileReport); reportError != nil {
			return Summary{}, fmt.Errorf(reportWriteErrorTemplateConstant, reportError)
		}
	}

	if finishError := reporter.Finish(summary); finishError != nil {
		return Summary{}, fmt.Errorf(reportWriteErrorTemplateConstant, finishError)
	}

	service.logger.Info(
		checkCompletedMessageConstant,
		zap.Int(logFieldSourceCountConstant, summary.FilesScanned),
		zap.Int(logFieldFilesWithIssuesCountConstant, summary.FilesWithIssues),
		zap.Int(logFieldIssueCountConstant, summary.TotalIssues),
	)

	return summary, nil
}

func (service *Service) resolveRoot(root string) (string, error) {
	candidateRoot := strings.TrimSpace(root)
	if len(candidateRoot) == 0 {
		candidateRoot = defaultRootPathConstant
	}

	absoluteRoot, absError := service.fileSystem.Abs(candidateRoot)
	if absError != nil {
		return "", fmt.Errorf(rootResolutionErrorTemplateConstant, candidateRoot, absError)
	}

	rootInfo, statError := service.fileSystem.Stat(absoluteRoot)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return "", fmt.Errorf(rootNotFoundTemplateConstant, ErrRootNotFound, absoluteRoot)
		}
		return "", fmt.Errorf(rootInspectionErrorTemplateConstant, absoluteRoot, statError)
	}

	if !rootInfo.IsDir() {
		return "", fmt.Errorf(rootNotFoundTemplateConstant, ErrRootNotDirectory, absoluteRoot)
	}

	return absoluteRoot, nil
}

func (service *Service) scanSources(executionContext context.Context, rootDirectory string, sourcePaths []string, jobs int) ([]FileReport, error) {
	fileReports := make([]FileReport, len(sourcePaths))
	if len(sourcePaths) == 0 {
		return fileReports, nil
	}

	group, groupContext := errgroup.WithContext(executionContext)
	group.SetLimit(min(jobs, len(sourcePaths)))

	for sourceIndex, relativePath := range sourcePaths {
		sourceIndex, relativePath := sourceIndex, relativePath
		group.Go(func() error {
			if contextError := groupContext.Err(); contextError != nil {
				return contextError
			}

			fileReport, scanError := service.scanSource(rootDirectory, relativePath)
			if scanError != nil {
				return scanError
			}

			fileReports[sourceIndex] = fileReport
			return nil
		})
	}

	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	return fileReports, nil
}

func (service *Service) scanSource(rootDirectory string, relativePath string) (FileReport, error) {
	sourcePath := filepath.Join(rootDirectory, relativePath)

	sourceReader, openError := service.fileSystem.Open(sourcePath)
	if openError != nil {
		return FileReport{}, fmt.Errorf(sourceOpenErrorTemplateConstant, sourcePath, openError)
	}
	defer sourceReader.Close()

	issues, scanError := directives.ScanReader(sourceReader)
	if scanError != nil {
		return FileReport{}, fmt.Errorf(sourceScanErrorTemplateConstant, sourcePath, scanError)
	}

	service.logger.Debug(
		sourceScannedMessageConstant,
		zap.String(logFieldSourcePathConstant, sourcePath),
		zap.Int(logFieldIssueCountConstant, len(issues)),
	)

	return FileReport{
		Path:         sourcePath,
		RelativePath: relativePath,
		Issues:       issues,
	}, nil
}
