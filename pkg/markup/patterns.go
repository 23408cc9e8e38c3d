package markup

import (
	"regexp"
	"sync"

	"github.com/dlclark/regexp2"
)

// Group names shared by the expressions below
const (
	groupTag  = "tag"
	groupRGB  = "rgb"
	groupARGB = "argb"
	groupText = "text"
)

const (
	// colorTagExpr matches <c=PAYLOAD>text</c> and <color=PAYLOAD>text</color>.
	// The close name is a backreference to the open literal.
	colorTagExpr = `<(?<tag>c|color)=(#?((?<rgb>[a-fA-F0-9]{6})|(?<argb>[a-fA-F0-9]{8})))?>(?<text>.*?)<\s*/\s*\k<tag>\s*>`

	// pairTagExpr matches any <name ...>text</name> pair
	pairTagExpr = `<\s*(?<tag>[^ >]+)[^>]*>(?<text>.*?)<\s*/\s*\k<tag>\s*>`

	// anyTagExpr matches any bracketed token
	anyTagExpr = `<.*?>`
)

// Patterns holds the compiled tag grammar. A Patterns value is immutable once
// built and may be shared between goroutines.
type Patterns struct {
	colorTag *regexp2.Regexp
	pairTag  *regexp2.Regexp
	anyTag   *regexp.Regexp
}

// NewPatterns compiles the tag grammar
func NewPatterns() (*Patterns, error) {
	colorTag, err := regexp2.Compile(colorTagExpr, regexp2.Multiline)
	if err != nil {
		return nil, err
	}
	pairTag, err := regexp2.Compile(pairTagExpr, regexp2.Multiline)
	if err != nil {
		return nil, err
	}
	anyTag, err := regexp.Compile(anyTagExpr)
	if err != nil {
		return nil, err
	}
	return &Patterns{
		colorTag: colorTag,
		pairTag:  pairTag,
		anyTag:   anyTag,
	}, nil
}

var (
	defaultPatterns     *Patterns
	defaultPatternsOnce sync.Once
)

// DefaultPatterns returns the shared Patterns value, compiling it on first use
func DefaultPatterns() *Patterns {
	defaultPatternsOnce.Do(func() {
		p, err := NewPatterns()
		if err != nil {
			// the expressions are constants; failing here is a programming error
			panic(err)
		}
		defaultPatterns = p
	})
	return defaultPatterns
}
