package directives

import "fmt"

const (
	issueLineTemplateConstant          = "Line %d: %s"
	issueNoMatchingOpenerTemplate      = "%s - no matching #ifdef/#ifndef"
	issueMissingEndifTemplateConstant  = "%s - missing #endif"
	endifDirectiveConstant             = "#endif"
	elifDirectivePrefixConstant        = "#elif"
	elseDirectivePrefixConstant        = "#else"
	issueKindUnmatchedBranchConstant   = "unmatched_branch"
	issueKindUnmatchedEndifConstant    = "unmatched_endif"
	issueKindMissingEndifValueConstant = "missing_endif"
)

// IssueKind classifies a balance problem.
type IssueKind string

// Supported issue kinds.
const (
	IssueKindUnmatchedBranch IssueKind = issueKindUnmatchedBranchConstant
	IssueKindUnmatchedEndif  IssueKind = issueKindUnmatchedEndifConstant
	IssueKindMissingEndif    IssueKind = issueKindMissingEndifValueConstant
)

// OpenDirective records an opener that has not been closed yet.
type OpenDirective struct {
	Directive string
	Line      int
}

// Issue describes one mismatch found while scanning a file.
type Issue struct {
	Line      int
	Kind      IssueKind
	Directive string
	Message   string
}

// String renders the issue as "Line N: message".
func (issue Issue) String() string {
	return fmt.Sprintf(issueLineTemplateConstant, issue.Line, issue.Message)
}

func newUnmatchedBranchIssue(lineNumber int, directive string) Issue {
	return Issue{
		Line:      lineNumber,
		Kind:      IssueKindUnmatchedBranch,
		Directive: directive,
		Message:   fmt.Sprintf(issueNoMatchingOpenerTemplate, directive),
	}
}

// The message names #endif alone even when the line carries a trailing comment.
func newUnmatchedEndifIssue(lineNumber int, directive string) Issue {
	return Issue{
		Line:      lineNumber,
		Kind:      IssueKindUnmatchedEndif,
		Directive: directive,
		Message:   fmt.Sprintf(issueNoMatchingOpenerTemplate, endifDirectiveConstant),
	}
}

func newMissingEndifIssue(openDirective OpenDirective) Issue {
	return Issue{
		Line:      openDirective.Line,
		Kind:      IssueKindMissingEndif,
		Directive: openDirective.Directive,
		Message:   fmt.Sprintf(issueMissingEndifTemplateConstant, openDirective.Directive),
	}
}
