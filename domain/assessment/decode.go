package assessment

import (
	"github.com/tidwall/gjson"
)

// Decode parses a raw JSON object of answers ({"question_id": value, ...})
// against a question set. Answer shapes vary by question kind, so the
// payload is walked dynamically rather than unmarshalled into a struct.
//
// Invalid entries never fail the decode: unknown question IDs, wrong-shaped
// values, out-of-range scales, duplicate multiselect values and options
// outside the question's fixed set are all treated as absent answers.
func Decode(raw []byte) Answers {
	return DecodeFor(raw, DefaultQuestions())
}

// DecodeFor parses raw answers against an explicit question set.
func DecodeFor(raw []byte, questions []Question) Answers {
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return Answers{}
	}

	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	answers := Answers{}
	parsed.ForEach(func(key, value gjson.Result) bool {
		q, known := byID[key.String()]
		if !known {
			return true
		}
		if ans, ok := decodeValue(q, value); ok {
			answers[q.ID] = ans
		}
		return true
	})
	return answers
}

func decodeValue(q Question, value gjson.Result) (Answer, bool) {
	switch q.Kind {
	case KindSelect:
		if value.Type != gjson.String {
			return nil, false
		}
		v := value.String()
		if v == "" || !optionAllowed(q.Options, v) {
			return nil, false
		}
		return SelectAnswer{Value: v}, true

	case KindScale:
		if value.Type != gjson.Number {
			return nil, false
		}
		n := int(value.Int())
		if float64(n) != value.Float() || n < 1 || n > 5 {
			return nil, false
		}
		return ScaleAnswer{Value: n}, true

	case KindMultiSelect:
		values, ok := decodeStringList(q, value)
		if !ok {
			return nil, false
		}
		return MultiSelectAnswer{Values: values}, true

	case KindRank:
		values, ok := decodeStringList(q, value)
		if !ok {
			return nil, false
		}
		return RankAnswer{Values: values}, true
	}
	return nil, false
}

// decodeStringList validates an ordered list of strings: every element must
// be a string, allowed by the question's option set, and appear only once.
func decodeStringList(q Question, value gjson.Result) ([]string, bool) {
	if !value.IsArray() {
		return nil, false
	}
	var values []string
	seen := make(map[string]bool)
	valid := true
	value.ForEach(func(_, item gjson.Result) bool {
		if item.Type != gjson.String {
			valid = false
			return false
		}
		v := item.String()
		if v == "" || seen[v] || !optionAllowed(q.Options, v) {
			valid = false
			return false
		}
		seen[v] = true
		values = append(values, v)
		return true
	})
	if !valid {
		return nil, false
	}
	return values, true
}

// optionAllowed reports whether v is permitted for a question. Questions
// with no declared options accept any non-empty value.
func optionAllowed(options []string, v string) bool {
	if len(options) == 0 {
		return true
	}
	for _, opt := range options {
		if opt == v {
			return true
		}
	}
	return false
}
