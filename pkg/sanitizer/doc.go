// Package sanitizer cleans untrusted strings before they are displayed: HTML escaping
// and tag stripping, whitespace and control character cleanup, e-mail validation and
// obfuscation, and phone number normalisation and pattern formatting.
//
// Helpers are small, stateless functions of the form func(string) string where possible,
// so they can be chained with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.EscapeHTML,
//	)
//
//	safe := clean("  <b>Mixed</b>\tinput\n") // "&lt;b&gt;Mixed&lt;/b&gt; input"
//
// # Error handling
//
// None of the helpers returns an error. Invalid input yields a safe result, usually
// the trimmed original or an empty string; IsEmail reports validity explicitly.
//
// All helpers are safe for concurrent use.
package sanitizer
