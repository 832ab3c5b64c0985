package config

import "time"

type StubConfig struct {
	HTTPAddr  string
	JWTSecret string
	TokenTTL  time.Duration

	// Payload shape toggles, for exercising the client's adapters.
	LegacyFields bool // answer logins with {role, name} instead of {perfil, nome}
	WrapContent  bool // wrap event listings in {content: [...]}
}

// LoadStub loads environment variables for the local stub backend.
func LoadStub() StubConfig {
	return StubConfig{
		HTTPAddr:     getEnv("STUB_HTTP_ADDR", ":8080"),
		JWTSecret:    getEnv("STUB_JWT_SECRET", "dev-only-secret"),
		TokenTTL:     getEnvDuration("STUB_TOKEN_TTL_MIN", 60) * time.Minute,
		LegacyFields: getEnv("STUB_LEGACY_FIELDS", "false") == "true",
		WrapContent:  getEnv("STUB_WRAP_CONTENT", "false") == "true",
	}
}
