package msword

import "strings"

// HasMacros reports whether the OLE container carries a VBA project,
// without attempting to decompile it. Real VBA projects live in a
// "Macros" storage (itself containing a "VBA" sub-storage with module
// streams); the OLE reader this package is built on only enumerates
// stream entries by name, not the storage hierarchy, so this is a
// name-based heuristic rather than a structural check.
func HasMacros(r oleReader) bool {
	lister, ok := r.(interface{ ListEntries() []string })
	if !ok {
		return false
	}
	for _, name := range lister.ListEntries() {
		upper := strings.ToUpper(name)
		if strings.Contains(upper, "VBA") || upper == "MACROS" {
			return true
		}
	}
	return false
}
