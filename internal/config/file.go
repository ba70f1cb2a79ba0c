package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout shared by JSON and YAML config files.
type fileConfig struct {
	App struct {
		VerifierHashKey     string   `json:"verifier_hash_key" yaml:"verifier_hash_key"`
		TokenSignKey        string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration       Duration `json:"token_duration" yaml:"token_duration"`
		ProofDuration       Duration `json:"proof_duration" yaml:"proof_duration"`
		HashKey             string   `json:"hash_key" yaml:"hash_key"`
		MaxVaultsPerProfile int      `json:"max_vaults_per_profile" yaml:"max_vaults_per_profile"`
		IdentityToken       string   `json:"identity_token" yaml:"identity_token"`
		Version             string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn" yaml:"dsn"`
			Driver string `json:"driver" yaml:"driver"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		AutoLockAfter Duration `json:"auto_lock_after" yaml:"auto_lock_after"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	KeyStore struct {
		Backend string `json:"backend" yaml:"backend"`
		Path    string `json:"path" yaml:"path"`
	} `json:"keystore,omitempty" yaml:"keystore,omitempty"`
}

func (f fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			VerifierHashKey:     f.App.VerifierHashKey,
			TokenSignKey:        f.App.TokenSignKey,
			TokenIssuer:         f.App.TokenIssuer,
			TokenDuration:       time.Duration(f.App.TokenDuration),
			ProofDuration:       time.Duration(f.App.ProofDuration),
			HashKey:             f.App.HashKey,
			MaxVaultsPerProfile: f.App.MaxVaultsPerProfile,
			IdentityToken:       f.App.IdentityToken,
			Version:             f.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:    f.Storage.DB.DSN,
				Driver: f.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			AutoLockAfter: time.Duration(f.Workers.AutoLockAfter),
		},
		KeyStore: KeyStore{
			Backend: f.KeyStore.Backend,
			Path:    f.KeyStore.Path,
		},
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.structured(), nil
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	yamlFile, err := os.Open(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var yamlCfg fileConfig
	if err := yaml.NewDecoder(yamlFile).Decode(&yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return yamlCfg.structured(), nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML files. A JSON number is read
// as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
