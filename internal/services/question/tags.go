package question

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// Tags список тегов. В JSON принимает как массив строк, так и строку через запятую.
type Tags []string

// UnmarshalJSON разбирает массив строк или строку "a, b, c".
func (t *Tags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tags must be a string or an array of strings")
	}
	*t = strings.Split(s, ",")
	return nil
}

// NormalizeTags обрезает пробелы, отбрасывает пустые теги и проверяет их число.
func NormalizeTags(raw []string) ([]string, error) {
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) > models.MaxQuestionTags {
		return nil, apperr.ValidationErr(fmt.Sprintf("maximum %d tags allowed", models.MaxQuestionTags))
	}
	return tags, nil
}
