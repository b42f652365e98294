package scryfall

// SetConversion maps Scryfall set codes to the code used by MTGA.
// Keys are uppercase.
var SetConversion = map[string]string{
	"G18": "M19",
}

// NormalizeSet returns the MTGA code for an uppercase Scryfall set code,
// or the input if there is no alias.
func NormalizeSet(setCode string) string {
	alias, found := SetConversion[setCode]
	if found {
		return alias
	}
	return setCode
}
