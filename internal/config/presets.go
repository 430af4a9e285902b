package config

// Known environments. Only these two carry a preset.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
)

// presets are the hardcoded per-environment defaults. Keys use koanf's
// dotted notation so they line up with what the env provider produces.
//
// Both environments listen on 3000; they differ in the database they use.
var presets = map[string]map[string]any{
	EnvDevelopment: {
		"server.port":                 "3000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"database.driver":             DriverMongo,
		"database.uri":                "mongodb://localhost:27017/TodoApp",
		"database.name":               "TodoApp",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  300,
		"database.conn_max_idle_time": 60,
		"auth.secret_key":             "pqr987",
	},
	EnvTest: {
		"server.port":                 "3000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"database.driver":             DriverMongo,
		"database.uri":                "mongodb://localhost:27017/TodoAppTest",
		"database.name":               "TodoAppTest",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  300,
		"database.conn_max_idle_time": 60,
		"auth.secret_key":             "pqr987",
	},
}

// Preset returns a copy of the defaults for environment, and whether the
// environment has any.
func Preset(environment string) (map[string]any, bool) {
	preset, ok := presets[environment]
	if !ok {
		return nil, false
	}

	out := make(map[string]any, len(preset))
	for k, v := range preset {
		out[k] = v
	}
	return out, true
}
