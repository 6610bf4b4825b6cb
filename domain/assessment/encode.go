package assessment

import (
	"encoding/json"
)

// Encode renders answers back to the flat JSON object shape Decode accepts
// ({"question_id": value, ...}), suitable for JSONB storage.
func Encode(answers Answers) ([]byte, error) {
	flat := make(map[string]interface{}, len(answers))
	for id, ans := range answers {
		switch v := ans.(type) {
		case SelectAnswer:
			flat[id] = v.Value
		case MultiSelectAnswer:
			flat[id] = v.Values
		case ScaleAnswer:
			flat[id] = v.Value
		case RankAnswer:
			flat[id] = v.Values
		}
	}
	return json.Marshal(flat)
}
