package core

import (
	"sort"
	"strconv"
	"strings"
)

const suggestionLimit = 8

// normalizeModel collapses the model spellings customers actually type:
// trims, lowercases, and strips spaces and hyphens so "F250" and "F-250"
// compare equal.
func normalizeModel(model string) string {
	s := strings.ToLower(strings.TrimSpace(model))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// Resolve returns the wiper sizes for a make/model pair, or nil when the
// vehicle is unknown. Matching is two-pass: an exact case-insensitive match
// on the "Make_Model" key, then a fallback that compares the make
// case-insensitively and the model under normalizeModel. Unknown vehicles
// are not an error.
func Resolve(make, model string) *SizeEntry {
	if strings.TrimSpace(make) == "" || strings.TrimSpace(model) == "" {
		return nil
	}

	key := strings.ToLower(strings.TrimSpace(make) + "_" + strings.TrimSpace(model))
	for k, entry := range wiperSizeTable {
		if strings.ToLower(k) == key {
			e := entry
			return &e
		}
	}

	makeLower := strings.ToLower(strings.TrimSpace(make))
	modelNorm := normalizeModel(model)
	for k, entry := range wiperSizeTable {
		idx := strings.Index(k, "_")
		if idx < 0 {
			continue
		}
		dbMake, dbModel := k[:idx], k[idx+1:]
		if strings.ToLower(dbMake) == makeLower && normalizeModel(dbModel) == modelNorm {
			e := entry
			return &e
		}
	}
	return nil
}

// ModelsForMake returns the distinct known models for a make, sorted.
func ModelsForMake(makeName string) []string {
	makeLower := strings.ToLower(strings.TrimSpace(makeName))
	if makeLower == "" {
		return nil
	}

	seen := make(map[string]bool)
	var models []string
	for k := range wiperSizeTable {
		idx := strings.Index(k, "_")
		if idx < 0 {
			continue
		}
		dbMake, dbModel := k[:idx], k[idx+1:]
		if strings.ToLower(dbMake) != makeLower || seen[dbModel] {
			continue
		}
		seen[dbModel] = true
		models = append(models, dbModel)
	}
	sort.Strings(models)
	return models
}

// SuggestModels returns up to 8 model suggestions for a make. An empty
// partial returns the first 8 models; otherwise a case-insensitive
// substring filter is applied.
func SuggestModels(make, partial string) []string {
	models := ModelsForMake(make)
	q := strings.ToLower(strings.TrimSpace(partial))
	if q == "" {
		if len(models) > suggestionLimit {
			return models[:suggestionLimit]
		}
		return models
	}

	var out []string
	for _, m := range models {
		if strings.Contains(strings.ToLower(m), q) {
			out = append(out, m)
			if len(out) == suggestionLimit {
				break
			}
		}
	}
	return out
}

// Makes returns the fixed list of vehicle makes offered on intake forms.
func Makes() []string {
	out := make([]string, len(vehicleMakes))
	copy(out, vehicleMakes)
	return out
}

// Years returns the model years offered on intake forms, newest first.
func Years() []string {
	years := make([]string, 0, 30)
	for y := 2026; y > 2026-30; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}
