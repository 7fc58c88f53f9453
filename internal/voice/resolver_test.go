package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSymptomChecker(t *testing.T) {
	result := Resolve("I want to check symptoms please", LanguageEnglish)

	require.True(t, result.Recognized)
	require.NotNil(t, result.Intent)
	assert.Equal(t, ActionNavigate, result.Intent.Action)
	assert.Equal(t, "/ai-checker", result.Intent.Target)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	result := Resolve("OPEN THE DASHBOARD", LanguageEnglish)

	require.True(t, result.Recognized)
	assert.Equal(t, "/dashboard", result.Intent.Target)
}

func TestResolveEmergency(t *testing.T) {
	for _, language := range []string{LanguageEnglish, LanguageHindi, LanguageTamil, LanguageTelugu} {
		var transcript string
		switch language {
		case LanguageEnglish:
			transcript = "this is an emergency"
		case LanguageHindi:
			transcript = "यह आपातकाल है"
		case LanguageTamil:
			transcript = "இது அவசரம் ஆகும்"
		case LanguageTelugu:
			transcript = "ఇది అత్యవసరం"
		}

		result := Resolve(transcript, language)
		require.True(t, result.Recognized, "language %s", language)
		assert.Equal(t, ActionEmergency, result.Intent.Action, "language %s", language)
		assert.Equal(t, EmergencyTarget, result.Intent.Target, "language %s", language)
		assert.Contains(t, result.Response, "108", "language %s", language)
	}
}

func TestResolveNotUnderstood(t *testing.T) {
	result := Resolve("play some music", LanguageEnglish)

	assert.False(t, result.Recognized)
	assert.Nil(t, result.Intent)
	assert.NotEmpty(t, result.Response)
}

func TestResolveFirstDeclaredPhraseWins(t *testing.T) {
	// "check symptoms" contains "symptom" too, but the longer phrase is
	// declared first, so it is the one that matches.
	result := Resolve("check symptoms", LanguageEnglish)
	require.True(t, result.Recognized)
	assert.Equal(t, "/ai-checker", result.Intent.Target)

	// A transcript with both "record" and "lab test" resolves to the
	// earlier table entry, regardless of word order in the utterance.
	result = Resolve("show lab test record", LanguageEnglish)
	require.True(t, result.Recognized)
	assert.Equal(t, "/records", result.Intent.Target)
}

func TestResolveHindiNavigation(t *testing.T) {
	result := Resolve("मेरे मरीज दिखाओ", LanguageHindi)

	require.True(t, result.Recognized)
	assert.Equal(t, ActionNavigate, result.Intent.Action)
	assert.Equal(t, "/patients", result.Intent.Target)
}

func TestResolveUnknownLanguageFallsBackToEnglish(t *testing.T) {
	result := Resolve("open appointments", "bengali")

	require.True(t, result.Recognized)
	assert.Equal(t, "/appointments", result.Intent.Target)
}

func TestEmergencyResponsePerLanguage(t *testing.T) {
	assert.Equal(t, "Calling 108 Emergency Services", EmergencyResponse(LanguageEnglish))
	assert.Contains(t, EmergencyResponse(LanguageHindi), "108")
	assert.Contains(t, EmergencyResponse(LanguageTamil), "108")
	assert.Contains(t, EmergencyResponse(LanguageTelugu), "108")
	assert.Equal(t, EmergencyResponse(LanguageEnglish), EmergencyResponse("unknown"))
}

func TestSupportedLanguage(t *testing.T) {
	assert.True(t, SupportedLanguage(LanguageEnglish))
	assert.True(t, SupportedLanguage(LanguageTelugu))
	assert.False(t, SupportedLanguage("french"))
}
