package locomotion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

var curves = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outexpo":    ease.OutExpo,
	"inexpo":     ease.InExpo,
}

// DefaultCurve eases the dash speed in and out from full to zero.
var DefaultCurve ease.TweenFunc = ease.InOutQuad

// CurveByName looks up an easing function by name, ignoring case, dashes
// and underscores ("in-out-quad", "InOutQuad"). Empty selects DefaultCurve.
func CurveByName(name string) (ease.TweenFunc, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	if key == "" {
		return DefaultCurve, nil
	}
	if f, ok := curves[key]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown curve %q (known: %s)", name, strings.Join(CurveNames(), ", "))
}

// CurveNames lists the registered curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for k := range curves {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
