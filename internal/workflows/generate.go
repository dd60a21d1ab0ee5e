package workflows

import (
	"context"

	"github.com/PolarWolf314/passvault/internal/configs"
	"github.com/PolarWolf314/passvault/internal/passgen"
)

// GenerateOptions configures the password generator workflow. Nil fields
// fall back to the settings remembered in config.toml.
type GenerateOptions struct {
	Settings *configs.Settings

	Length    *int
	Special   *bool
	Digits    *bool
	Uppercase *bool
	Lowercase *bool

	// NoSave leaves the remembered settings unchanged.
	NoSave bool
}

// GenerateResult contains the generated password and the settings used.
type GenerateResult struct {
	Password string
	Options  passgen.Options
	Saved    bool
}

// GeneratePassword generates a password and, unless NoSave is set,
// remembers the effective settings for the next run.
func GeneratePassword(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	settings := opts.Settings
	if settings == nil {
		settings = configs.PassvaultSettings
	}

	cfg, err := configs.LoadConfig(settings)
	if err != nil {
		return nil, err
	}

	gen := cfg.Generator
	if opts.Length != nil {
		gen.Length = *opts.Length
	}
	overrideBool(&gen.IncludeSpecial, opts.Special)
	overrideBool(&gen.IncludeDigits, opts.Digits)
	overrideBool(&gen.IncludeUppercase, opts.Uppercase)
	overrideBool(&gen.IncludeLowercase, opts.Lowercase)

	genOpts := GeneratorOptions(gen)
	password, err := passgen.Generate(genOpts)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Password: password, Options: genOpts}
	if opts.NoSave || gen == cfg.Generator {
		return result, nil
	}

	cfg.Generator = gen
	if err := configs.SaveConfig(settings, cfg); err != nil {
		return nil, err
	}
	result.Saved = true
	return result, nil
}

// GeneratorOptions converts remembered generator settings to passgen options.
func GeneratorOptions(gen configs.GeneratorConfig) passgen.Options {
	return passgen.Options{
		Length:    gen.Length,
		Special:   gen.IncludeSpecial,
		Digits:    gen.IncludeDigits,
		Uppercase: gen.IncludeUppercase,
		Lowercase: gen.IncludeLowercase,
	}
}

func overrideBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
