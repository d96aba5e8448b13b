package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Solver
	Gravity    float64 `json:"gravity"`    // downward acceleration added every tick
	Iterations int     `json:"iterations"` // relaxation passes per tick
	Stiffness  float64 `json:"stiffness"`
	Friction   float64 `json:"friction"`
	Mass       float64 `json:"mass"`

	// Interaction
	PointRadius float64 `json:"pointRadius"` // draw/boundary-inset radius of a point
	GrabRadius  float64 `json:"grabRadius"`  // pointer pick distance threshold

	// Cloth topology
	ClothCols    int     `json:"clothCols"`
	ClothRows    int     `json:"clothRows"`
	ClothSpacing float64 `json:"clothSpacing"`

	// Wheel topology
	WheelSides  int     `json:"wheelSides"`
	WheelRadius float64 `json:"wheelRadius"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:   1000,
		WorldHeight:  800,
		Gravity:      0.5,
		Iterations:   16,
		Stiffness:    0.9,
		Friction:     0.02,
		Mass:         1,
		PointRadius:  4,
		GrabRadius:   25,
		ClothCols:    18,
		ClothRows:    12,
		ClothSpacing: 22,
		WheelSides:   10,
		WheelRadius:  70,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate against the schema before binding to the struct
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
