package models

import (
	"encoding/json"

	"go.uber.org/zap"
)

// encodeJSONMap serializes metadata for a jsonb column
func encodeJSONMap(m map[string]any) string {
	if len(m) == 0 {
		return "{}"
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// decodeJSONMap parses a jsonb column; malformed content yields an empty map
func decodeJSONMap(raw string) map[string]any {
	out := map[string]any{}
	if raw == "" || raw == "{}" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// logged through the global logger so malformed rows stay visible
		zap.L().Named("models").Warn("failed to parse metadata JSON",
			zap.Error(err),
			zap.String("raw_json", raw),
		)
		return map[string]any{}
	}
	return out
}
