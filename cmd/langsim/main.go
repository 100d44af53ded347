// Command langsim simulates a page visit against the language resolver, or
// checks a YAML scenario file, without a browser.
//
//	langsim -page site/en/index.html -url /en/?lang=ja -stored en
//	langsim -scenarios site/scenarios.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"finitefield.org/hanko-langgate/internal/observability"
	"finitefield.org/hanko-langgate/internal/sim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("langsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		page      = fs.String("page", "", "HTML page to load")
		target    = fs.String("url", "/", "URL the page is visited at")
		stored    = fs.String("stored", "", "stored preference before the visit")
		locale    = fs.String("locale", "", "browser locale, e.g. en-US")
		accept    = fs.String("accept-language", "", "Accept-Language header to derive the browser locale from")
		click     = fs.String("click", "", "activate language elements for this language after wiring")
		denied    = fs.Bool("storage-denied", false, "simulate unavailable browser storage")
		scenarios = fs.String("scenarios", "", "YAML scenario file to check")
		printHTML = fs.Bool("html", false, "print the rewritten page")
		logLevel  = fs.String("log-level", "warn", "log level")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := observability.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "init logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if *scenarios != "" {
		return checkScenarios(*scenarios, logger, stdout, stderr)
	}
	if *page == "" {
		fmt.Fprintln(stderr, "langsim: -page or -scenarios is required")
		fs.Usage()
		return 2
	}

	if *locale == "" && *accept != "" {
		*locale = localeFromAcceptLanguage(*accept)
	}

	f, err := os.Open(*page)
	if err != nil {
		fmt.Fprintf(stderr, "langsim: %v\n", err)
		return 1
	}
	defer f.Close()

	res, err := sim.Run(f, sim.Visit{
		URL:           *target,
		Stored:        *stored,
		Locale:        *locale,
		Click:         *click,
		StorageDenied: *denied,
		Logger:        logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "langsim: %v\n", err)
		return 1
	}
	printResult(stdout, res)
	if *printHTML && res.Redirect == "" {
		if err := res.Page.Render(stdout); err != nil {
			fmt.Fprintf(stderr, "langsim: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout)
	}
	return 0
}

func printResult(w io.Writer, res sim.Result) {
	if res.Redirect != "" {
		fmt.Fprintf(w, "redirect: %s\n", res.Redirect)
	} else {
		fmt.Fprintln(w, "redirect: (none)")
	}
	fmt.Fprintf(w, "stored: %s\n", orNone(res.Stored))
	if res.Hint != "" {
		fmt.Fprintf(w, "hint: %s\n", res.Hint)
	}
	for _, l := range res.Links {
		active := ""
		if l.Active {
			active = " (active)"
		}
		fmt.Fprintf(w, "link %s: %s%s\n", l.Lang, l.Href, active)
	}
	if res.Clicked > 0 {
		fmt.Fprintf(w, "clicked: %d\n", res.Clicked)
	}
}

func checkScenarios(path string, logger *zap.Logger, stdout, stderr io.Writer) int {
	scenarios, err := sim.LoadScenarios(path)
	if err != nil {
		fmt.Fprintf(stderr, "langsim: %v\n", err)
		return 1
	}
	failed := 0
	for _, rep := range sim.Check(scenarios, logger) {
		if rep.OK() {
			fmt.Fprintf(stdout, "ok   %s\n", rep.Name)
			continue
		}
		failed++
		fmt.Fprintf(stdout, "FAIL %s\n", rep.Name)
		for _, f := range rep.Failures {
			fmt.Fprintf(stdout, "     %s\n", f)
		}
	}
	fmt.Fprintf(stdout, "%d scenarios, %d failed\n", len(scenarios), failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
