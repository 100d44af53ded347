package main

import "golang.org/x/text/language"

// localeFromAcceptLanguage returns the highest weighted tag of an
// Accept-Language header, the way navigator.language reports the user's
// first preference. Unparseable headers yield "".
func localeFromAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
