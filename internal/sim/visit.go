package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"finitefield.org/hanko-langgate/internal/dom"
	"finitefield.org/hanko-langgate/internal/lang"
	"finitefield.org/hanko-langgate/internal/resolver"
)

// ErrNoPage is returned when a visit has no page to load.
var ErrNoPage = errors.New("sim: no page")

// Visit describes one simulated page load. Click, when set, activates every
// switch or setter element tagged with that language after the page has been
// wired.
type Visit struct {
	URL           string
	Stored        string
	Locale        string
	Click         string
	StorageDenied bool
	Logger        *zap.Logger
}

// Link is a wired language switch link. Links are only reported when the
// page was not redirected away.
type Link struct {
	Lang   string `yaml:"lang"`
	Href   string `yaml:"href"`
	Active bool   `yaml:"active"`
}

// Result is the observable state after a visit.
type Result struct {
	Redirect string
	Stored   string
	Hint     string
	Links    []Link
	Clicked  int
	Page     *dom.Document
}

// Run loads page at v.URL and evaluates it.
func Run(page io.Reader, v Visit) (Result, error) {
	if page == nil {
		return Result{}, ErrNoPage
	}
	loc, err := lang.ParseLocation(v.URL)
	if err != nil {
		return Result{}, fmt.Errorf("parse url %q: %w", v.URL, err)
	}
	doc, err := dom.Parse(page)
	if err != nil {
		return Result{}, err
	}

	env := NewEnv(loc).WithLocale(v.Locale)
	if v.Stored != "" {
		env.WithStored(v.Stored)
	}
	if v.StorageDenied {
		env.DisableStorage()
	}

	out := resolver.New(env, doc, resolver.WithLogger(v.Logger)).Run()
	res := Result{Redirect: out.Target, Hint: out.Hint, Page: doc}
	if !out.Redirected {
		res.Links = links(doc)
		if v.Click != "" {
			res.Clicked = doc.Select(v.Click)
		}
	}
	res.Stored = env.Stored()
	return res, nil
}

func links(doc *dom.Document) []Link {
	var out []Link
	doc.Find("[" + resolver.SwitchAttr + "]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		out = append(out, Link{
			Lang:   s.AttrOr(resolver.SwitchAttr, ""),
			Href:   href,
			Active: s.HasClass(resolver.ActiveClass),
		})
	})
	return out
}
