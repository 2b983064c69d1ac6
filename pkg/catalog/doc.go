// Package catalog provides the default violation-message templates in
// several languages and locale-aware selection between them.
//
// A rule configuration may carry its own message templates; when it does
// not, the engine falls back to this catalog. Locale matching is delegated
// to golang.org/x/text/language, so BCP 47 variants resolve to their base
// language and unknown locales fall back to English.
//
// # Usage
//
//	c := catalog.New(
//	    catalog.WithMessages(language.French,
//	        "Saisissez au moins %d caractères.",
//	        "Saisissez au plus %d caractères."),
//	)
//	tmpl := c.MinMessage("fr-CA") // French template
package catalog
