package rdf

import (
	"sort"
	"strings"
)

func isQNameLocal(value string) bool {
	if value == "" || value[len(value)-1] == '.' {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}

// abbreviateQName picks the longest matching namespace for iri.
func abbreviateQName(iri string, prefixes map[string]string, allowEmptyPrefix bool) (string, bool) {
	if len(prefixes) == 0 {
		return "", false
	}
	bestNS := ""
	bestPrefix := ""
	found := false
	for prefix, ns := range prefixes {
		if prefix == "" && !allowEmptyPrefix {
			continue
		}
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if !isQNameLocal(iri[len(ns):]) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS = ns
			bestPrefix = prefix
			found = true
		}
	}
	if !found {
		return "", false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
