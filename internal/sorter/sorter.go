package sorter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"audioscribe/pkg/Logger"
)

// Category groups keywords that route a document into one destination folder.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultRules are evaluated in order; the first category with a matching
// keyword wins.
var DefaultRules = []Category{
	{Name: "Finance", Keywords: []string{"invoice", "payment", "receipt", "tax", "bill"}},
	{Name: "Engineering", Keywords: []string{"spec", "technical", "design", "blueprint", "circuit"}},
	{Name: "HR", Keywords: []string{"resume", "cv", "employee", "salary", "hiring"}},
	{Name: "Legal", Keywords: []string{"contract", "agreement", "nda", "policy"}},
	{Name: "Reports", Keywords: []string{"report", "analysis", "summary", "review"}},
}

// UnsortedCategory is the destination for documents matching no rule.
const UnsortedCategory = "Unsorted"

type compiledCategory struct {
	name     string
	patterns []*regexp.Regexp
}

// Sorter classifies PDF and DOCX files by keyword and moves them into
// per-category folders.
type Sorter struct {
	rules  []compiledCategory
	logger *Logger.Logger
}

// New compiles the rules; nil rules fall back to DefaultRules.
func New(rules []Category, logger *Logger.Logger) *Sorter {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	compiled := make([]compiledCategory, 0, len(rules))
	for _, cat := range rules {
		cc := compiledCategory{name: cat.Name}
		for _, word := range cat.Keywords {
			cc.patterns = append(cc.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(word)+`\b`))
		}
		compiled = append(compiled, cc)
	}
	return &Sorter{rules: compiled, logger: logger}
}

// Categorize returns the first category whose keyword appears as a whole word
// in text. Callers pass lower-cased text; keywords are lower-case already.
func (s *Sorter) Categorize(text string) string {
	for _, cat := range s.rules {
		for _, re := range cat.patterns {
			if re.MatchString(text) {
				return cat.name
			}
		}
	}
	return UnsortedCategory
}

// SortDirectory classifies every PDF/DOCX file directly under srcDir and
// moves it into destBase/<category>/. Extraction errors classify the file as
// Unsorted; move errors skip the file. Both are logged, neither stops the
// walk.
func (s *Sorter) SortDirectory(srcDir, destBase string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("failed to read source directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(srcDir, entry.Name())

		var text string
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf":
			text, err = extractPDFText(path)
		case ".docx":
			text, err = extractDOCXText(path)
		default:
			continue
		}
		if err != nil {
			s.logger.Errorf("read error (%s): %v", path, err)
			text = ""
		}

		category := s.Categorize(strings.ToLower(text))
		if err := moveFile(path, filepath.Join(destBase, category)); err != nil {
			s.logger.Errorf("move error (%s): %v", path, err)
			continue
		}
		s.logger.Infof("moved to %s: %s", category, entry.Name())
	}
	return nil
}

func moveFile(src, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}
	dest := filepath.Join(destDir, filepath.Base(src))
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	// rename fails across filesystems; fall back to copy + remove
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
