package directives

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maximumLineLengthBytesConstant = 64 * 1024 * 1024
	initialLineBufferBytesConstant = 64 * 1024
	readErrorTemplateConstant      = "failed to read source text: %w"
)

var openingDirectivePattern = regexp.MustCompile(`^#if(?:def|ndef)?`)

// balanceTracker holds the open-directive stack for a single file.
type balanceTracker struct {
	stack  []OpenDirective
	issues []Issue
}

func (tracker *balanceTracker) consume(lineNumber int, rawLine string) {
	trimmedLine := strings.TrimFunc(rawLine, isDirectiveSpace)

	switch {
	case isOpeningDirective(trimmedLine):
		tracker.stack = append(tracker.stack, OpenDirective{Directive: trimmedLine, Line: lineNumber})
	case strings.HasPrefix(trimmedLine, elifDirectivePrefixConstant) || strings.HasPrefix(trimmedLine, elseDirectivePrefixConstant):
		if len(tracker.stack) == 0 {
			tracker.issues = append(tracker.issues, newUnmatchedBranchIssue(lineNumber, trimmedLine))
		}
	case strings.HasPrefix(trimmedLine, endifDirectiveConstant):
		if len(tracker.stack) == 0 {
			tracker.issues = append(tracker.issues, newUnmatchedEndifIssue(lineNumber, trimmedLine))
			return
		}
		tracker.stack = tracker.stack[:len(tracker.stack)-1]
	}
}

// isOpeningDirective reports whether line starts with #if, #ifdef or #ifndef
// followed by whitespace. Whitespace is Unicode-aware, so "#ifdef\vA" and
// "#ifdef\u00a0A" open a region like "#ifdef A".
func isOpeningDirective(line string) bool {
	if strings.HasPrefix(line, endifDirectiveConstant) {
		return false
	}

	keyword := openingDirectivePattern.FindString(line)
	if len(keyword) == 0 {
		return false
	}

	nextRune, _ := utf8.DecodeRuneInString(line[len(keyword):])
	return nextRune != utf8.RuneError && isDirectiveSpace(nextRune)
}

// isDirectiveSpace extends unicode.IsSpace with the information separators
// U+001C..U+001F, which line trimming and opener detection also treat as
// whitespace.
func isDirectiveSpace(character rune) bool {
	return unicode.IsSpace(character) || (character >= '\x1c' && character <= '\x1f')
}

func (tracker *balanceTracker) finish() []Issue {
	for _, openDirective := range tracker.stack {
		tracker.issues = append(tracker.issues, newMissingEndifIssue(openDirective))
	}
	tracker.stack = nil
	return tracker.issues
}

// Scan reports the balance issues found in lines. Line numbers are 1-based.
// Issues for unmatched closers and branch markers appear in line order,
// followed by one issue per opener left open, in the order they were opened.
func Scan(lines []string) []Issue {
	tracker := &balanceTracker{}
	for lineIndex, line := range lines {
		tracker.consume(lineIndex+1, line)
	}
	return tracker.finish()
}

// ScanReader decodes reader permissively and scans its lines. Lines end at
// "\n", "\r\n" or a lone "\r". Only read failures are returned as errors.
func ScanReader(reader io.Reader) ([]Issue, error) {
	lineScanner := bufio.NewScanner(NewPermissiveReader(reader))
	lineScanner.Buffer(make([]byte, 0, initialLineBufferBytesConstant), maximumLineLengthBytesConstant)
	lineScanner.Split(splitUniversalLines)

	tracker := &balanceTracker{}
	lineNumber := 0
	for lineScanner.Scan() {
		lineNumber++
		tracker.consume(lineNumber, lineScanner.Text())
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, fmt.Errorf(readErrorTemplateConstant, scanError)
	}

	return tracker.finish(), nil
}

func splitUniversalLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	for index, character := range data {
		switch character {
		case '\n':
			return index + 1, data[:index], nil
		case '\r':
			if index+1 < len(data) {
				if data[index+1] == '\n' {
					return index + 2, data[:index], nil
				}
				return index + 1, data[:index], nil
			}
			if atEOF {
				return index + 1, data[:index], nil
			}
			return 0, nil, nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
