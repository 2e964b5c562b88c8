package blogbuild

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Recognized metadata blocks: YAML between --- lines, TOML between +++ lines.
var frontMatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// metadata is a decoded front matter block. Unquoted YAML timestamps decode
// to time.Time so real dates can be told apart from date-like strings.
type metadata map[string]any

func (m *metadata) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("front matter must be a mapping, got %s", value.ShortTag())
	}
	out := make(metadata, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		v, err := decodeYAMLValue(val)
		if err != nil {
			return fmt.Errorf("front matter key %q: %w", key.Value, err)
		}
		out[key.Value] = v
	}
	*m = out
	return nil
}

func decodeYAMLValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		var t time.Time
		if err := n.Decode(&t); err == nil {
			return t, nil
		}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// parseFrontMatter splits src into its metadata block and body. A source
// without a metadata block yields empty metadata and the whole input as body.
func parseFrontMatter(src []byte) (metadata, []byte, error) {
	if delim, ok := unclosedBlock(src); ok {
		return nil, nil, fmt.Errorf("parse front matter: no closing %s line", delim)
	}
	var meta metadata
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta, frontMatterFormats...)
	if err != nil {
		return nil, nil, fmt.Errorf("parse front matter: %w", err)
	}
	if meta == nil {
		meta = metadata{}
	}
	return meta, body, nil
}

// unclosedBlock reports whether src opens a metadata block that never closes.
func unclosedBlock(src []byte) (string, bool) {
	first, rest, _ := bytes.Cut(src, []byte("\n"))
	delim := string(bytes.TrimRight(first, " \t\r"))
	if delim != "---" && delim != "+++" {
		return "", false
	}
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = bytes.Cut(rest, []byte("\n"))
		if string(bytes.TrimRight(line, " \t\r")) == delim {
			return "", false
		}
	}
	return delim, true
}

// text returns the value for key as a string, or def when the key is absent or null.
func (m metadata) text(key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	return stringify(v)
}

// date returns the post date. Real dates are normalized to YYYY-MM-DD;
// anything else passes through unvalidated.
func (m metadata) date(now time.Time) string {
	v, ok := m["date"]
	if !ok || v == nil {
		return now.Format(isoDate)
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(isoDate)
	}
	return stringify(v)
}

// tags accepts a list of scalars or a single scalar.
func (m metadata) tags() []string {
	switch t := m["tags"].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if v == nil {
				continue
			}
			out = append(out, stringify(v))
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return []string{stringify(t)}
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(isoDate)
	default:
		return fmt.Sprint(t)
	}
}
