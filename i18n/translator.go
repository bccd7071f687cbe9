package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "got", "expected" or "transformer").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"missing_value":           "missing value",
		"incompatible_type":       "incompatible type: got {got}, want {expected}",
		"expected_array":          "expected an array, got {got}",
		"expected_object":         "expected an object, got {got}",
		"transformer_failed":      "transformer {transformer} failed",
		"child_incompatible_type": "value of type {type} cannot be encoded",
		"parse_error":             "parse error",
	},
	"ja": {
		"missing_value":           "値が不足しています",
		"incompatible_type":       "型が不正です: {got} ではなく {expected} が必要です",
		"expected_array":          "配列が必要です ({got})",
		"expected_object":         "オブジェクトが必要です ({got})",
		"transformer_failed":      "変換 {transformer} に失敗しました",
		"child_incompatible_type": "型 {type} はエンコードできません",
		"parse_error":             "解析エラー",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
