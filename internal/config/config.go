package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

/*
dirección y puerto del facade: variable de entorno RUN_ADDRESS o flag -a;
dirección base del backend remoto: variable de entorno BACKEND_ADDRESS o flag -b.
*/

type ClientConfig struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	BackendAddress string `env:"BACKEND_ADDRESS"`
}

func NewConfig() (*ClientConfig, error) {

	// a .env next to the binary is optional
	_ = godotenv.Load()

	var params ClientConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ClientConfig

	flag.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	flag.StringVar(&commandLineParams.BackendAddress, "b", "http://localhost:8000", "Remote store base address")
	flag.Parse()

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.BackendAddress == "" {
		params.BackendAddress = commandLineParams.BackendAddress
	}

	return &params, nil
}
