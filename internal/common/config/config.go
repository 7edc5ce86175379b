package config

import (
	"os"
	"strconv"
	"strings"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	SceneDBPath string
	CORSOrigins []string

	// Пороги редактора в мировых единицах
	MinSize      float64
	HitTolerance float64
	PointRadius  float64
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		SceneDBPath:  getEnv("SCENE_DB_PATH", "data/db/scenes.db"),
		CORSOrigins:  getEnvAsList("CORS_ORIGINS"),
		MinSize:      getEnvAsFloat("MIN_SIZE", 0.5),
		HitTolerance: getEnvAsFloat("HIT_TOLERANCE", 4),
		PointRadius:  getEnvAsFloat("POINT_RADIUS", 3),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil && floatVal >= 0 {
			return floatVal
		}
	}
	return defaultVal
}

// getEnvAsList разбирает список через запятую; пустые элементы отбрасываются.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
