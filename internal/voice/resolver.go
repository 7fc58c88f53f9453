// Package voice maps transcribed utterances to navigation or emergency
// intents using fixed per-language phrase tables.
package voice

import "strings"

const (
	ActionNavigate  = "navigate"
	ActionEmergency = "emergency"

	// EmergencyTarget is the fixed target for emergency intents; 108 is
	// the national ambulance number in India.
	EmergencyTarget = "108"
)

// Intent is the resolved action for a recognized utterance.
type Intent struct {
	Action string `json:"action"`
	Target string `json:"target"`
}

// Result of resolving one transcript. When Recognized is false, Intent
// is nil and Response carries the language-specific not-understood
// message. An unrecognized transcript is a defined outcome, not an
// error.
type Result struct {
	Recognized bool    `json:"recognized"`
	Intent     *Intent `json:"intent,omitempty"`
	Response   string  `json:"response"`
}

// Resolve matches the transcript against the phrase table for the
// given language by case-folded substring containment. Phrases are
// tried in declaration order and the first match wins, so a shorter
// phrase declared earlier shadows any longer phrase that contains it.
// Unknown languages fall back to the English table.
func Resolve(transcript, language string) Result {
	entries, ok := phraseTables[language]
	if !ok {
		entries = phraseTables[LanguageEnglish]
		language = LanguageEnglish
	}

	folded := strings.ToLower(transcript)
	for _, entry := range entries {
		if strings.Contains(folded, strings.ToLower(entry.phrase)) {
			return Result{
				Recognized: true,
				Intent:     &Intent{Action: entry.action, Target: entry.target},
				Response:   entry.response,
			}
		}
	}

	return Result{Recognized: false, Response: notUnderstood(language)}
}

// EmergencyResponse returns the canned 108 announcement for the given
// language, defaulting to English.
func EmergencyResponse(language string) string {
	if response, ok := emergencyResponses[language]; ok {
		return response
	}
	return emergencyResponses[LanguageEnglish]
}

// SupportedLanguage reports whether the tag has its own phrase table.
func SupportedLanguage(language string) bool {
	_, ok := phraseTables[language]
	return ok
}

func notUnderstood(language string) string {
	if message, ok := notUnderstoodMessages[language]; ok {
		return message
	}
	return notUnderstoodMessages[LanguageEnglish]
}
