package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can spell durations as
// strings ("30s", "12h").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	d.Duration = parsed
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string [Duration] type, so a config file stays human-editable.
type StructuredJSONConfig struct {
	App struct {
		AdminPasswordHash string   `json:"admin_password_hash"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Data struct {
			Dir string `json:"dir"`
		} `json:"data,omitempty"`
		Files struct {
			UploadDir      string `json:"upload_dir"`
			MaxUploadBytes int64  `json:"max_upload_bytes"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Host     string `json:"smtp_host"`
		Port     int    `json:"smtp_port"`
		Username string `json:"smtp_user"`
		Password string `json:"smtp_pass"`
		To       string `json:"to"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config: %w", err)
	}

	return jsonCfg.toStructured(), nil
}

func (j *StructuredJSONConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminPasswordHash: j.App.AdminPasswordHash,
			TokenSignKey:      j.App.TokenSignKey,
			TokenIssuer:       j.App.TokenIssuer,
			TokenDuration:     j.App.TokenDuration.Duration,
			Version:           j.App.Version,
		},
		Storage: Storage{
			DB:   DB{DSN: j.Storage.DB.DSN},
			Data: Data{Dir: j.Storage.Data.Dir},
			Files: Files{
				UploadDir:      j.Storage.Files.UploadDir,
				MaxUploadBytes: j.Storage.Files.MaxUploadBytes,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: j.Server.RequestTimeout.Duration,
		},
		Mail: Mail{
			Host:     j.Mail.Host,
			Port:     j.Mail.Port,
			Username: j.Mail.Username,
			Password: j.Mail.Password,
			To:       j.Mail.To,
		},
	}
}
