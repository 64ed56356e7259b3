package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "index_type" or "format").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unknown_index_type":
			if it := data["index_type"]; it != "" {
				return "インデックス型 " + it + " を認識できないため、インデックス推定をスキップします"
			}
			return "インデックス型を認識できないため、インデックス推定をスキップします"
		case "incompatible_checks":
			return "チェックに互換性がありません"
		case "decode_error":
			if f := data["format"]; f != "" {
				return f + " 統計ドキュメントを復号できません"
			}
			return "統計ドキュメントを復号できません"
		}
	default: // "en"
		switch code {
		case "unknown_index_type":
			if it := data["index_type"]; it != "" {
				return "index type " + it + " not recognized, skipping index inference"
			}
			return "index type not recognized, skipping index inference"
		case "incompatible_checks":
			return "incompatible checks"
		case "decode_error":
			if f := data["format"]; f != "" {
				return "malformed " + f + " statistics document"
			}
			return "malformed statistics document"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
