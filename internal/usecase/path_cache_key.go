package usecase

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

const careerPathsKeyPrefix = "paths_"

type careerPathsKeyInput struct {
	Role      string   `json:"role"`
	Skills    []string `json:"skills"`
	Tasks     []string `json:"tasks"`
	Interests []string `json:"interests"`
}

func normalizeKeyValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeKeyList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, normalizeKeyValue(s))
	}
	sort.Strings(out)
	return out
}

// CareerPathsCacheKey fingerprints the onboarding tuple that drives
// career-path generation. Elements are normalized and sorted first, so
// callers get the same key regardless of input order, casing or
// surrounding whitespace. The hash is a 32-bit rolling hash rendered
// in base 36.
func CareerPathsCacheKey(role string, skills, tasks, interests []string) string {
	in := careerPathsKeyInput{
		Role:      normalizeKeyValue(role),
		Skills:    normalizeKeyList(skills),
		Tasks:     normalizeKeyList(tasks),
		Interests: normalizeKeyList(interests),
	}

	// encoding/json keeps struct field order, so equal normalized
	// inputs always serialize identically.
	b, _ := json.Marshal(in)

	var h int32
	for _, c := range b {
		h = h*31 + int32(c)
	}
	if h < 0 {
		h = -h
	}
	return careerPathsKeyPrefix + strconv.FormatInt(int64(h), 36)
}
