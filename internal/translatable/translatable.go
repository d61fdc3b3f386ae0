// Package translatable resolves localized fields of catalog entities and
// computes the row changes needed to update their translations.
package translatable

import (
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/google/uuid"
)

// DefaultLanguageCode is used when no language is configured.
const DefaultLanguageCode = "en"

// Input is a translation supplied by a caller on create or update.
type Input struct {
	LanguageCode string
	Name         string
	Slug         string
	Description  string
}

// Exact returns the translation in exactly languageCode.
func Exact(translations []model.Translation, languageCode string) (model.Translation, bool) {
	for _, t := range translations {
		if t.LanguageCode == languageCode {
			return t, true
		}
	}
	return model.Translation{}, false
}

// Find picks the translation in languageCode, then in defaultLanguage, then the
// first one available. It fails only when the entity has no translations.
func Find(entityName string, translations []model.Translation, languageCode, defaultLanguage string) (model.Translation, error) {
	if t, ok := Exact(translations, languageCode); ok {
		return t, nil
	}
	if languageCode != defaultLanguage {
		if t, ok := Exact(translations, defaultLanguage); ok {
			return t, nil
		}
	}
	if len(translations) > 0 {
		return translations[0], nil
	}
	return model.Translation{}, apperror.NoTranslation(entityName, languageCode)
}

// Build creates new translation rows for the entity baseID. Inputs without a
// language or name are skipped; a later input for the same language wins.
func Build(baseID string, inputs []Input) []model.Translation {
	out := make([]model.Translation, 0, len(inputs))
	index := map[string]int{}
	for _, in := range inputs {
		lang := strings.TrimSpace(in.LanguageCode)
		if lang == "" || strings.TrimSpace(in.Name) == "" {
			continue
		}
		row := model.Translation{
			ID:           uuid.New().String(),
			BaseID:       baseID,
			LanguageCode: lang,
			Name:         in.Name,
			Slug:         in.Slug,
			Description:  in.Description,
		}
		if i, ok := index[lang]; ok {
			row.ID = out[i].ID
			out[i] = row
			continue
		}
		index[lang] = len(out)
		out = append(out, row)
	}
	return out
}

// Diff holds the row operations that bring stored translations in line with
// an update input.
type Diff struct {
	ToAdd    []model.Translation
	ToUpdate []model.Translation
	ToRemove []model.Translation
}

func (d Diff) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToUpdate) == 0 && len(d.ToRemove) == 0
}

// Compute merges inputs into existing translations:
//   - an input for a stored language updates that row in place,
//   - an input for a new language adds a row,
//   - an input with a blank name removes the stored row for its language.
//
// Stored languages not mentioned in inputs are left untouched.
func Compute(baseID string, existing []model.Translation, inputs []Input) Diff {
	var d Diff
	seen := map[string]bool{}
	for _, in := range inputs {
		lang := strings.TrimSpace(in.LanguageCode)
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true

		current, ok := Exact(existing, lang)
		blank := strings.TrimSpace(in.Name) == ""
		switch {
		case ok && blank:
			d.ToRemove = append(d.ToRemove, current)
		case ok:
			current.Name = in.Name
			current.Slug = in.Slug
			current.Description = in.Description
			d.ToUpdate = append(d.ToUpdate, current)
		case !blank:
			d.ToAdd = append(d.ToAdd, Build(baseID, []Input{in})...)
		}
	}
	return d
}

// Apply returns existing with the diff applied, preserving stored order and
// appending added rows.
func Apply(existing []model.Translation, d Diff) []model.Translation {
	removed := map[string]bool{}
	for _, t := range d.ToRemove {
		removed[t.ID] = true
	}
	updated := map[string]model.Translation{}
	for _, t := range d.ToUpdate {
		updated[t.ID] = t
	}

	out := make([]model.Translation, 0, len(existing)+len(d.ToAdd))
	for _, t := range existing {
		if removed[t.ID] {
			continue
		}
		if u, ok := updated[t.ID]; ok {
			t = u
		}
		out = append(out, t)
	}
	return append(out, d.ToAdd...)
}
