package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// LookupEnvFunc has the signature of os.LookupEnv
type LookupEnvFunc func(key string) (string, bool)

type loadOptions struct {
	lookupEnv LookupEnvFunc
	file      string
}

// Option customizes Load
type Option func(*loadOptions)

// WithLookupEnv replaces os.LookupEnv as the source of environment variables
func WithLookupEnv(lookup LookupEnvFunc) Option {
	return func(o *loadOptions) {
		if lookup != nil {
			o.lookupEnv = lookup
		}
	}
}

// WithFile overlays a TOML override file on top of the compiled-in defaults
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// Load builds the deployment configuration.
//
// Precedence: environment variables > override file > compiled-in defaults.
// Without WithFile no I/O is performed. Every call returns a new value, so two
// calls against the same environment produce structurally equal results.
func Load(opts ...Option) (*config.Configuration, error) {
	o := loadOptions{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := defaultConfiguration()

	keysEnv := make(map[string]string)
	if o.file != "" {
		overlay, err := decodeOverrideFile(o.file)
		if err != nil {
			return nil, err
		}
		if keysEnv, err = overlay.apply(cfg, o.lookupEnv); err != nil {
			return nil, err
		}
	}

	applyAPIKeyEnv(cfg, o.lookupEnv)

	for i := range cfg.Networks {
		if err := resolveTargetEnv(&cfg.Networks[i], keysEnv[cfg.Networks[i].Name], o.lookupEnv); err != nil {
			return nil, err
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyAPIKeyEnv lets a set built-in variable win over the override file.
// Unset variables keep the file's value, or map to the empty string.
func applyAPIKeyEnv(cfg *config.Configuration, lookup LookupEnvFunc) {
	for service, envName := range apiKeyEnv {
		if value, _ := lookup(envName); value != "" {
			cfg.APIKeys[service] = value
			continue
		}
		if _, ok := cfg.APIKeys[service]; !ok {
			cfg.APIKeys[service] = ""
		}
	}
}

// resolveTargetEnv applies the endpoint override and resolves the credential source
func resolveTargetEnv(target *config.NetworkTarget, keysEnvOverride string, lookup LookupEnvFunc) error {
	if url, ok := lookup(GenerateEnvVarName(target.Name)); ok && url != "" {
		target.RPCEndpoint = url
	}

	// A file-named variable falls back to DEPLOYER_PRIVATE_KEYS like the
	// per-network default does
	keysEnv := keysEnvOverride
	if keysEnv == "" {
		keysEnv = GenerateKeysEnvVarName(target.Name)
	}
	if raw, ok := lookup(keysEnv); !ok || strings.TrimSpace(raw) == "" {
		keysEnv = DeployerKeysEnv
	}

	raw, ok := lookup(keysEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		target.Credentials = config.CredentialSource{Endpoint: target.RPCEndpoint}
		return nil
	}

	keys, err := ParsePrivateKeys(raw)
	if err != nil {
		return config.Malformed(fmt.Sprintf("networks.%s.credentials", target.Name), fmt.Sprintf("invalid key in %s", keysEnv), err)
	}

	target.Credentials = config.CredentialSource{
		PrivateKeys: keys,
		Endpoint:    target.RPCEndpoint,
		KeysEnv:     keysEnv,
	}
	return nil
}

// ParsePrivateKeys splits a comma-separated key list, keeping order and
// dropping repeats. Keys are normalized to lowercase hex without 0x.
func ParsePrivateKeys(raw string) ([]string, error) {
	var keys []string
	for i, part := range strings.Split(raw, ",") {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		key = strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X"))
		if _, err := crypto.HexToECDSA(key); err != nil {
			return nil, fmt.Errorf("key #%d: %w", i+1, err)
		}
		keys = append(keys, key)
	}
	return lo.Uniq(keys), nil
}
