package configuration

import (
	"encoding/json"
	"os"
)

type MongoConfig struct {
	Uri                string `json:"uri"`
	Database           string `json:"database"`
	UsersCollection    string `json:"usersCollection"`
	ProjectsCollection string `json:"projectsCollection"`
}

type ServerConfig struct {
	AppPort int `json:"app_port"`
}

type CorsConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

type Config struct {
	Database MongoConfig  `json:"mongo"`
	Server   ServerConfig `json:"server"`
	Cors     CorsConfig   `json:"cors"`
}

func LoadConfig(config_path string) (*Config, error) {
	file, err := os.ReadFile(config_path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = json.Unmarshal(file, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
