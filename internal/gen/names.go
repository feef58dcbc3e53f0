package gen

import "strings"

// goIdent turns a metadata Name ("Current Temperature") into an exported Go
// identifier ("CurrentTemperature"), the way the source generator's trim_helper
// strips spaces and dots before emitting an enum variant or type name.
func goIdent(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == ' ' || r == '.' || r == '-':
			upperNext = true
		case upperNext:
			b.WriteRune(toUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// shortenUUID strips an HAP UUID down to its canonical short form: take the first
// dash-delimited group and trim leading zeroes. Mirrors shorten_uuid in the source
// generator and the GLOSSARY's definition of HapType.
//
//	shortenUUID("0000003E-0000-1000-8000-0026BB765291") == "3E"
//	shortenUUID("00000001-0000-1000-8000-0026BB765291") == "1"
func shortenUUID(uuid string) string {
	group := strings.SplitN(uuid, "-", 2)[0]
	trimmed := strings.TrimLeft(group, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// ShortenUUID exports shortenUUID for callers outside this package; no package in
// this module calls it.
func ShortenUUID(uuid string) string { return shortenUUID(uuid) }
