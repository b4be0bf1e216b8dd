package render

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/hamidzr/movebox/model"
	"github.com/sahilm/fuzzy"
)

// Curves maps config names to fyne easing curves.
var Curves = map[string]fyne.AnimationCurve{
	"linear":      fyne.AnimationLinear,
	"ease-in":     fyne.AnimationEaseIn,
	"ease-out":    fyne.AnimationEaseOut,
	"ease-in-out": fyne.AnimationEaseInOut,
}

// CurveNames returns the known easing names, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(Curves))
	for name := range Curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurveByName resolves an easing name. Unknown names get the closest known
// name suggested in the error.
func CurveByName(name string) (fyne.AnimationCurve, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	if curve, ok := Curves[normalized]; ok {
		return curve, nil
	}
	if suggestion := closestCurveName(normalized); suggestion != "" {
		return nil, fmt.Errorf("%w %q, did you mean %q?", model.ErrUnknownEasing, name, suggestion)
	}
	return nil, fmt.Errorf("%w %q (expected one of %s)", model.ErrUnknownEasing, name, strings.Join(CurveNames(), ", "))
}

func closestCurveName(name string) string {
	if name == "" {
		return ""
	}
	matches := fuzzy.Find(name, CurveNames())
	if len(matches) == 0 {
		return ""
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches[0].Str
}
