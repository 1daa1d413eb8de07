package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Anitaku + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SiteBaseURL, constant.BaseURL, "Site root relative page and image URLs are resolved against")
	register(key.FetchProxy, constant.CORSProxy, "Proxy prefix the query-escaped target URL is appended to.\nLeave empty to fetch pages directly")
	register(key.FetchTimeout, 60, "Timeout in seconds for a single page fetch")
	register(key.FetchUserAgent, constant.UserAgent, "User-Agent header sent with page requests")
	register(key.FetchImpersonateTLS, false, "Dial TLS with a Chrome client hello fingerprint")
	register(key.FetchCloudflareBypass, false, "Send the browser headers and TLS ciphers Cloudflare checks for")
	register(key.OutputFormat, "json", "Output format.\nAvailable options are: json, yaml, text")
	register(key.OutputPretty, true, "Indent JSON output")
	register(key.OutputByTitle, false, "Key listing and search results by title.\nLater duplicates overwrite earlier ones")
	register(key.PaginationWindow, 2, "Number of pages shown on each side of the current one in pagination links")
	register(key.SearchShowQuerySuggestions, true, "Suggest previous queries when completing search keywords")
	register(key.SearchRememberQueries, true, "Remember search keywords for suggestions")
	register(key.ServerHost, "127.0.0.1", "Address the HTTP relay listens on")
	register(key.ServerPort, 8080, "Port the HTTP relay listens on")
	register(key.ServerMode, "release", "Gin mode of the HTTP relay.\nAvailable options are: debug, release, test")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release when showing help and version")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
