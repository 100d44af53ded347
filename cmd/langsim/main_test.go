package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSampleSiteScenariosPass(t *testing.T) {
	code, out, _ := runCLI(t, "-scenarios", "../../site/scenarios.yaml")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "7 scenarios, 0 failed")
}

func TestVisitLocalizedPageWithQuery(t *testing.T) {
	code, out, _ := runCLI(t, "-page", "../../site/en/index.html", "-url", "/en/?lang=ja&x=1#top", "-stored", "en")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "redirect: /ja/?x=1#top\n")
	assert.Contains(t, out, "stored: ja\n")
	assert.NotContains(t, out, "link ")
}

func TestVisitGatewayWithAcceptLanguage(t *testing.T) {
	code, out, _ := runCLI(t, "-page", "../../site/index.html", "-accept-language", "fr;q=0.5, en-GB;q=0.9", "-html")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "redirect: (none)\n")
	assert.Contains(t, out, "stored: (none)\n")
	assert.Contains(t, out, "hint: English is recommended based on your browser settings.\n")
	assert.Contains(t, out, "<!DOCTYPE html>")
}

func TestVisitSwitcherAndClick(t *testing.T) {
	code, out, _ := runCLI(t, "-page", "../../site/ja/index.html", "-url", "/ja/", "-click", "en")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "link ja: /ja/ (active)\n")
	assert.Contains(t, out, "link en: /en/\n")
	assert.Contains(t, out, "clicked: 1\n")
	assert.Contains(t, out, "stored: en\n")
}

func TestMissingPage(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, 2, code)
	assert.True(t, strings.Contains(errOut, "-page or -scenarios is required"))

	code, _, errOut = runCLI(t, "-page", "does-not-exist.html")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "does-not-exist.html")
}

func TestLocaleFromAcceptLanguage(t *testing.T) {
	assert.Equal(t, "en-US", localeFromAcceptLanguage("ja;q=0.8, en-US"))
	assert.Equal(t, "ja", localeFromAcceptLanguage("ja"))
	assert.Equal(t, "", localeFromAcceptLanguage(""))
}
