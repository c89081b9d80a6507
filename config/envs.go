package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the HTTP driver
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	MinDirt       int    // Minimum number of dirty cells in a fresh world
	MaxDirt       int    // Maximum number of dirty cells in a fresh world
	InitialEnergy int    // Energy the agent starts with
	BagCapacity   int    // Dirt units the bag holds
	HistorySize   int    // Recent actions kept for display
	StepsPerTick  int    // Steps the terminal driver runs per tick in auto mode
	TickMillis    int    // Terminal driver tick interval in milliseconds
	MaxStepBatch  int    // Upper bound on steps accepted by one HTTP step request
	TUILogFile    string // Log destination while the terminal driver owns the screen
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:        getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:      getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		MinDirt:       getEnvAsIntWithDefault("MIN_DIRT", 6),
		MaxDirt:       getEnvAsIntWithDefault("MAX_DIRT", 10),
		InitialEnergy: getEnvAsIntWithDefault("INITIAL_ENERGY", 100),
		BagCapacity:   getEnvAsIntWithDefault("BAG_CAPACITY", 10),
		HistorySize:   getEnvAsIntWithDefault("HISTORY_SIZE", 6),
		StepsPerTick:  getEnvAsIntWithDefault("STEPS_PER_TICK", 1),
		TickMillis:    getEnvAsIntWithDefault("TICK_MILLIS", 1000),
		MaxStepBatch:  getEnvAsIntWithDefault("MAX_STEP_BATCH", 1000),
		TUILogFile:    getEnvWithDefault("TUI_LOG_FILE", "vacuum-tui.log"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to
// defaultValue when it is unset or cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
