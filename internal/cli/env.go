package cli

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// LoadEnv loads a .env file before the configuration is read. An explicit
// GLOTTA_ENV_FILE wins over the default ".env"; a missing default file is
// not an error, local runs simply may not have one.
func LoadEnv(log zerolog.Logger) string {
	if custom := strings.TrimSpace(os.Getenv("GLOTTA_ENV_FILE")); custom != "" {
		if err := godotenv.Overload(custom); err != nil {
			log.Warn().Str("path", custom).Err(err).Msg("failed to load env file")
			return ""
		}
		return custom
	}

	if err := godotenv.Overload(".env"); err == nil {
		return ".env"
	}
	return ""
}
