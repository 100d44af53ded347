package sim

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Scenario is one entry of a scenario file. Page is resolved relative to
// the file's directory.
type Scenario struct {
	Name          string  `yaml:"name"`
	Page          string  `yaml:"page"`
	URL           string  `yaml:"url"`
	Stored        string  `yaml:"stored"`
	Locale        string  `yaml:"locale"`
	Click         string  `yaml:"click"`
	StorageDenied bool    `yaml:"storage_denied"`
	Expect        Expects `yaml:"expect"`
}

// Expects lists the checked outcomes. Nil fields are not checked; an empty
// Redirect asserts that no redirect happened.
type Expects struct {
	Redirect *string          `yaml:"redirect"`
	Stored   *string          `yaml:"stored"`
	Hint     *string          `yaml:"hint"`
	Links    map[string]*Link `yaml:"links"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Report is the result of checking one scenario.
type Report struct {
	Name     string
	Failures []string
}

// OK reports whether every expectation held.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// LoadScenarios reads a YAML scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f scenarioFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	base := filepath.Dir(path)
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", i+1)
		}
		if s.Page != "" && !filepath.IsAbs(s.Page) {
			s.Page = filepath.Join(base, s.Page)
		}
	}
	return f.Scenarios, nil
}

// Check runs each scenario and compares the outcome with its expectations.
func Check(scenarios []Scenario, logger *zap.Logger) []Report {
	reports := make([]Report, 0, len(scenarios))
	for _, s := range scenarios {
		reports = append(reports, check(s, logger))
	}
	return reports
}

func check(s Scenario, logger *zap.Logger) Report {
	rep := Report{Name: s.Name}
	if s.Page == "" {
		rep.Failures = append(rep.Failures, ErrNoPage.Error())
		return rep
	}
	f, err := os.Open(s.Page)
	if err != nil {
		rep.Failures = append(rep.Failures, err.Error())
		return rep
	}
	defer f.Close()

	res, err := Run(f, Visit{
		URL:           s.URL,
		Stored:        s.Stored,
		Locale:        s.Locale,
		Click:         s.Click,
		StorageDenied: s.StorageDenied,
		Logger:        logger,
	})
	if err != nil {
		rep.Failures = append(rep.Failures, err.Error())
		return rep
	}

	fail := func(format string, args ...any) {
		rep.Failures = append(rep.Failures, fmt.Sprintf(format, args...))
	}
	exp := s.Expect
	if exp.Redirect != nil && *exp.Redirect != res.Redirect {
		fail("redirect: want %q, got %q", *exp.Redirect, res.Redirect)
	}
	if exp.Stored != nil && *exp.Stored != res.Stored {
		fail("stored: want %q, got %q", *exp.Stored, res.Stored)
	}
	if exp.Hint != nil && *exp.Hint != res.Hint {
		fail("hint: want %q, got %q", *exp.Hint, res.Hint)
	}
	for l, want := range exp.Links {
		got, ok := findLink(res.Links, l)
		if !ok {
			fail("link %s: not rewritten", l)
			continue
		}
		if want == nil {
			continue
		}
		if want.Href != "" && want.Href != got.Href {
			fail("link %s: want href %q, got %q", l, want.Href, got.Href)
		}
		if want.Active != got.Active {
			fail("link %s: want active=%v, got %v", l, want.Active, got.Active)
		}
	}
	return rep
}

func findLink(links []Link, l string) (Link, bool) {
	for _, link := range links {
		if strings.EqualFold(link.Lang, l) {
			return link, true
		}
	}
	return Link{}, false
}
