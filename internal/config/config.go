package config

import (
	"fmt"
)

// Config holds the parsed command-line configuration
type Config struct {
	// Command is the executable to record under xctrace
	Command string
	// Args are the arguments to pass to the command
	Args []string
	// Input is an already-exported XML file; when set, no recording runs
	Input string
	// Output is the file the rendered lines go to; empty means stdout
	Output string
	// Filter is an expression events must satisfy to be rendered
	Filter string
	// Template overrides the xctrace recording template
	Template string
	// NoColor disables ANSI styling
	NoColor bool
	// OTEL additionally emits one OpenTelemetry span per event
	OTEL bool
	// KeepTrace leaves the recorded .trace bundle on disk
	KeepTrace bool
}

// ParseArgs parses command-line arguments and returns a Config.
// Expected format: program_name [flags] -- <command> [args...]
// or: program_name [flags] --input <export.xml>
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	programName := args[0]
	cfg := &Config{}

	// Find the "--" separator, collecting flags before it
	cmdStart := -1
	for i := 1; i < len(args); i++ {
		if args[i] == "--" {
			cmdStart = i + 1
			break
		}

		switch args[i] {
		case "--input", "-i":
			v, err := flagValue(args, &i)
			if err != nil {
				return nil, err
			}
			cfg.Input = v
		case "--output", "-o":
			v, err := flagValue(args, &i)
			if err != nil {
				return nil, err
			}
			cfg.Output = v
		case "--filter", "-f":
			v, err := flagValue(args, &i)
			if err != nil {
				return nil, err
			}
			cfg.Filter = v
		case "--template":
			v, err := flagValue(args, &i)
			if err != nil {
				return nil, err
			}
			cfg.Template = v
		case "--no-color":
			cfg.NoColor = true
		case "--otel":
			cfg.OTEL = true
		case "--keep-trace":
			cfg.KeepTrace = true
		default:
			return nil, fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	if cmdStart == -1 && cfg.Input == "" {
		return nil, fmt.Errorf("Usage: %s [flags] -- <command> [args...]\n       %s --input <export.xml>\nExample: %s -- ls -la",
			programName, programName, programName)
	}
	if cmdStart != -1 {
		if cmdStart >= len(args) {
			return nil, fmt.Errorf("no command given after --")
		}
		cmdArgs := args[cmdStart:]
		cfg.Command = cmdArgs[0]
		cfg.Args = cmdArgs[1:]
	}

	return cfg, nil
}

// flagValue consumes the value following args[*i], advancing the index.
func flagValue(args []string, i *int) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", args[*i])
	}
	*i++
	return args[*i], nil
}

// FullCommand returns the command and all its arguments as a slice
func (c *Config) FullCommand() []string {
	return append([]string{c.Command}, c.Args...)
}
