package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDetectLanguage(t *testing.T) {
	entries := []Entry{
		{Text: "Hello, world! How are you doing today?"},
		{Text: "こんにちは、世界！今日はいい天気ですね。"},
		{Text: "こんにちは、世界！お元気ですか。"},
	}
	assert.Equal(t, language.Japanese, DetectLanguage(entries))
	assert.Equal(t, language.Und, DetectLanguage(nil))
}

func TestLanguageHeader(t *testing.T) {
	assert.Equal(t, "[la:ja]", LanguageHeader(language.Japanese))
	assert.Equal(t, "", LanguageHeader(language.Und))
}
