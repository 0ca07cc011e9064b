package fontweight

import (
	"regexp"
	"strconv"
	"strings"
)

var weightNames = map[int]string{
	100: "Thin",
	200: "ExtraLight",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "SemiBold",
	700: "Bold",
	800: "ExtraBold",
	900: "Black",
}

type weightPattern struct {
	re     *regexp.Regexp
	weight int
}

// Compound names come before their suffixes so "Extra Bold" is not read as Bold.
var weightPatterns = []weightPattern{
	{regexp.MustCompile(`\b(extralight|extra light|extra-light|ultralight|ultra light|ultra-light)\b`), 200},
	{regexp.MustCompile(`\b(semibold|semi bold|semi-bold|demibold|demi bold|demi-bold)\b`), 600},
	{regexp.MustCompile(`\b(extrabold|extra bold|extra-bold|ultrabold|ultra bold|ultra-bold)\b`), 800},
	{regexp.MustCompile(`\b(thin)\b`), 100},
	{regexp.MustCompile(`\b(light)\b`), 300},
	{regexp.MustCompile(`\b(regular|normal|book|roman|text)\b`), 400},
	{regexp.MustCompile(`\b(medium)\b`), 500},
	{regexp.MustCompile(`\b(bold)\b`), 700},
	{regexp.MustCompile(`\b(black|heavy)\b`), 900},
}

var (
	numericWeight = regexp.MustCompile(`\b(\d{3})\b`)

	abbreviations = []weightPattern{
		{regexp.MustCompile(`\blt\b`), 300},
		{regexp.MustCompile(`\bmd\b`), 500},
		{regexp.MustCompile(`\bbd\b`), 700},
		{regexp.MustCompile(`\beb\b`), 800},
		{regexp.MustCompile(`\bbl\b`), 900},
	}
)

// WeightFromName guesses a weight class from a family, style or file name.
func WeightFromName(name string) (int, bool) {
	lower := strings.ToLower(name)

	for _, p := range weightPatterns {
		if p.re.MatchString(lower) {
			return p.weight, true
		}
	}

	if m := numericWeight.FindStringSubmatch(name); m != nil {
		if w, err := strconv.Atoi(m[1]); err == nil {
			if _, ok := weightNames[w]; ok {
				return w, true
			}
		}
	}

	for _, p := range abbreviations {
		if p.re.MatchString(lower) {
			return p.weight, true
		}
	}

	return 0, false
}

// WeightName maps a weight class to its conventional name, or the number
// itself for non-standard classes.
func WeightName(weight int) string {
	if name, ok := weightNames[weight]; ok {
		return name
	}
	return strconv.Itoa(weight)
}
