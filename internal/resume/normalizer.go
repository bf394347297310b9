package resume

import (
	"go.uber.org/zap"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/llm"
)

// ParseOutput normalizes a resume-parse answer into a Record. It never fails:
// fenced output is unwrapped, and text that is not a JSON object yields the
// empty Record. Diagnostics go to the global logger.
func ParseOutput(raw string) Record {
	return parseOutput(raw, zap.L())
}

func parseOutput(raw string, logger *zap.Logger) Record {
	cleaned := llm.StripFences(raw)

	v, err := Decode(cleaned)
	if err != nil {
		logger.Warn("failed to parse resume output as JSON",
			zap.Error(err),
			zap.Int("length", len(cleaned)))
		return Record{}
	}

	obj, ok := v.(Object)
	if !ok {
		logger.Warn("resume output is not a JSON object", zap.String("type", kindOf(v)))
		return Record{}
	}

	pruned, _ := Prune(obj).(Object)
	return Record{Object: pruned}
}

func kindOf(v Value) string {
	switch v.(type) {
	case Object:
		return "object"
	case List:
		return "array"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	default:
		return "null"
	}
}
