package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Report   Report   `koanf:"report"`
	Sheets   Sheets   `koanf:"sheets"`
	Database Database `koanf:"db"`
}

type Report struct {
	// MonthlyIncome is the caller-supplied income figure used for net savings
	// and the daily baseline line. Income is not a tracked entity.
	MonthlyIncome float64 `koanf:"monthlyincome"`
}

type Sheets struct {
	Enabled         bool   `koanf:"enabled"`
	SpreadsheetId   string `koanf:"spreadsheetid"`
	SheetName       string `koanf:"sheetname"`
	CredentialsFile string `koanf:"credentialsfile"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Report: Report{
			MonthlyIncome: 50000,
		},
		Sheets: Sheets{
			Enabled:   false,
			SheetName: "Expenses",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "kharcha",
			Pass:   "",
			Name:   "kharcha",
			Schema: "kharcha",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "KHARCHA_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "KHARCHA_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
