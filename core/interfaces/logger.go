package interfaces

// Logger is the structured logger used by every layer.
// Fields may be nil.
//
//	logger.Warn("Data source failed", map[string]interface{}{
//		"source": "cultural_entities",
//		"query":  "春节",
//		"error":  err.Error(),
//	})
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
