package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"unicode"

	"github.com/Alia5/webkeys/internal/configpaths"
	"github.com/Alia5/webkeys/internal/log"
	"github.com/Alia5/webkeys/internal/table"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"dump,codegen"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to <command>.<format> in the current directory, where it is picked up automatically)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

var configCommands = map[string]reflect.Type{
	"dump":    reflect.TypeOf(Dump{}),
	"codegen": reflect.TypeOf(Codegen{}),
}

// Run generates a configuration template from the command's flag defaults.
func (c *ConfigInit) Run(logger *slog.Logger) error {
	format, err := table.ParseFormat(c.Format)
	if err != nil || format == table.FormatText {
		return fmt.Errorf("unsupported config format: %s", c.Format)
	}
	data, err := ConfigTemplate(c.Command, format)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + string(format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s exists; use --force to overwrite", dest)
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote configuration template", "command", c.Command, "path", dest)
	return nil
}

// ConfigTemplate renders the default configuration of a command in the layout
// the configuration loaders read back: the command's flags in a section named
// after it, the shared log flags as flat log.* keys.
func ConfigTemplate(command string, format table.Format) ([]byte, error) {
	t, ok := configCommands[command]
	if !ok {
		return nil, fmt.Errorf("unknown command %q; expected dump or codegen", command)
	}
	root := map[string]any{command: buildMapFromStruct(t)}
	for k, v := range buildMapFromStruct(reflect.TypeOf(log.Config{})) {
		root["log."+k] = v
	}

	switch format {
	case table.FormatJSON:
		return json.MarshalIndent(root, "", "  ")
	case table.FormatYAML:
		return yaml.Marshal(root)
	case table.FormatTOML:
		return toml.Marshal(root)
	default:
		return nil, fmt.Errorf("%w: %s", table.ErrUnsupportedFormat, format)
	}
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, isArg := f.Tag.Lookup("arg"); isArg {
			continue
		}
		if _, embedded := f.Tag.Lookup("embed"); embedded || f.Anonymous {
			for k, v := range buildMapFromStruct(f.Type) {
				out[k] = v
			}
			continue
		}
		key := lowerCamel(f.Name)
		if name := f.Tag.Get("name"); name != "" {
			key = name
		}
		if v := defaultValueForField(f.Type, f.Tag.Get("default")); v != nil {
			out[key] = v
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	default:
		return nil
	}
}
