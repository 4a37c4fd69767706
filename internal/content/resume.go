package content

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
)

// ResumeEntry is one position in the resume data file.
type ResumeEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Application string `json:"application"`
}

// LoadResume decodes the JSON array at dir/name, preserving file order.
func LoadResume(dir, name string) ([]ResumeEntry, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.ResourceNotFoundError("resume data %s", name).WithContext("path", path).Build()
		}
		return nil, ferrors.ResourceNotFoundError("read resume data %s", name).WithCause(err).WithContext("path", path).Build()
	}

	var entries []ResumeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, ferrors.ResourceDecodeError("decode resume data %s", name).WithCause(err).WithContext("path", path).Build()
	}
	return entries, nil
}
