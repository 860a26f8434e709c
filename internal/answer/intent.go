// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import "strings"

// Intent labels a recognized question category.
type Intent string

const (
	IntentPurpose   Intent = "purpose"
	IntentInstall   Intent = "install"
	IntentExample   Intent = "example"
	IntentFeatures  Intent = "features"
	IntentPlatforms Intent = "platforms"
	IntentLicense   Intent = "license"
	IntentTopics    Intent = "topics"
)

// intentOrder fixes trigger evaluation order so classification is stable.
var intentOrder = []Intent{
	IntentPurpose,
	IntentInstall,
	IntentExample,
	IntentFeatures,
	IntentPlatforms,
	IntentLicense,
	IntentTopics,
}

// intentTriggers maps each intent to the phrases that activate it. A phrase
// matches anywhere in the lowercased question, so "os" also fires inside
// longer words; the scoring stage tolerates the occasional false positive.
var intentTriggers = map[Intent][]string{
	IntentPurpose:   {"what is", "what does", "purpose", "about", "overview"},
	IntentInstall:   {"install", "installation", "setup", "pip", "how to install"},
	IntentExample:   {"example", "usage", "code", "snippet", "how to use"},
	IntentFeatures:  {"feature", "capability", "highlights"},
	IntentPlatforms: {"platform", "supported", "python version", "os", "operating system", "architecture"},
	IntentLicense:   {"license", "licence"},
	IntentTopics:    {"topic", "category", "tags", "keywords"},
}

// intentWeights maps an intent to per-field score boosts. Purpose lifts the
// description strongly and the name slightly; every other intent points at
// exactly one field.
var intentWeights = map[Intent]map[string]int{
	IntentPurpose:   {"project:description": 3, "project:name": 1},
	IntentInstall:   {"install:commands": 3},
	IntentExample:   {"examples:code": 3},
	IntentFeatures:  {"features:list": 3},
	IntentPlatforms: {"platforms:list": 3},
	IntentLicense:   {"project:license": 3},
	IntentTopics:    {"project:topics": 3},
}

// Classify returns every intent whose trigger occurs in the question,
// case-insensitively. A question that triggers nothing is treated as asking
// about the project's purpose.
func Classify(question string) []Intent {
	q := strings.ToLower(question)
	var hits []Intent
	for _, intent := range intentOrder {
		for _, trigger := range intentTriggers[intent] {
			if strings.Contains(q, trigger) {
				hits = append(hits, intent)
				break
			}
		}
	}
	if len(hits) == 0 {
		return []Intent{IntentPurpose}
	}
	return hits
}
