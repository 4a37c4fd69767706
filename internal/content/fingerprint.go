package content

import (
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	"github.com/lyleresnick/folio/internal/frontmatter"
)

// Fingerprint computes the mdfp content fingerprint of an article from its
// raw front matter and body. A fingerprint field already present in the front
// matter is ignored, so the value is stable across rewrites.
func Fingerprint(rawFrontmatter []byte, body []byte) (string, error) {
	fields, err := frontmatter.ParseYAML(rawFrontmatter)
	if err != nil {
		return "", err
	}
	delete(fields, mdfp.FingerprintField)

	fm := ""
	if len(fields) > 0 {
		// yaml.v3 sorts map keys, which keeps the serialized form canonical.
		out, err := yaml.Marshal(fields)
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}
