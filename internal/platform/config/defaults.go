package config

const (
	defaultAdminPort = 8085
	// The terminal belongs to the UI, so logs go to a file unless told otherwise.
	defaultLogFile = "logs/todo.log"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"app.title":       "To-dos",
		"app.placeholder": "What needs to be done?",
		"app.alt_screen":  true,

		"log.level":  "info",
		"log.format": "json",
		"log.file":   defaultLogFile,

		"admin.enabled":       false,
		"admin.host":          "127.0.0.1",
		"admin.port":          defaultAdminPort,
		"admin.read_timeout":  "5s",
		"admin.write_timeout": "10s",
		"admin.idle_timeout":  "120s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo",
	}
}
