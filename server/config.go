package server

import (
	"fmt"

	"gopkg.in/ini.v1"
)

type Config struct {
	Addr        string
	HistorySize int
	LogLevel    string
}

func DefaultConfig() Config {
	return loadCfg(ini.Empty())
}

// LoadConfig reads the [server] and [log] sections of an ini file.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	return Config{
		Addr:        file.Section("server").Key("Addr").MustString(":9000"),
		HistorySize: file.Section("server").Key("HistorySize").MustInt(32),
		LogLevel:    file.Section("log").Key("Level").MustString("info"),
	}
}
