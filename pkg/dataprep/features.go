package dataprep

import (
	"fmt"
	"regexp"

	"titanic/pkg/dataset"
	"titanic/pkg/stats"
)

// Engineered column names.
const (
	ColFamilySize = "FamilySize"
	ColIsAlone    = "IsAlone"
	ColTitle      = "Title"
	ColAgeBin     = "AgeBin"
	ColFareBin    = "FareBin"
)

var titlePattern = regexp.MustCompile(` ([A-Za-z]+)\.`)

// rare titles collapse into a single category; a few French forms map to
// their common English equivalents.
var titleGroups = map[string]string{
	"Lady":     "Rare",
	"Countess": "Rare",
	"Capt":     "Rare",
	"Col":      "Rare",
	"Don":      "Rare",
	"Dr":       "Rare",
	"Major":    "Rare",
	"Rev":      "Rare",
	"Sir":      "Rare",
	"Jonkheer": "Rare",
	"Dona":     "Rare",
	"Mlle":     "Miss",
	"Ms":       "Miss",
	"Mme":      "Mrs",
}

// ageBin holds one age interval (lower exclusive, upper inclusive).
type ageBin struct {
	upper float64
	label string
}

var ageBins = []ageBin{
	{12, "Child"},
	{18, "Teenager"},
	{35, "Adult"},
	{60, "Middle"},
	{100, "Senior"},
}

// GenerateFeatures derives the engineered columns in place: FamilySize
// and IsAlone from the companion counts, Title from the name, and binned
// Age and Fare. Clean must run first so Age and Fare are complete.
func GenerateFeatures(f *dataset.Frame) error {
	if err := addFamilyFeatures(f); err != nil {
		return fmt.Errorf("dataprep: features: %w", err)
	}
	if err := addTitle(f); err != nil {
		return fmt.Errorf("dataprep: features: %w", err)
	}
	if err := addAgeBin(f); err != nil {
		return fmt.Errorf("dataprep: features: %w", err)
	}
	if err := addFareBin(f); err != nil {
		return fmt.Errorf("dataprep: features: %w", err)
	}
	return nil
}

func addFamilyFeatures(f *dataset.Frame) error {
	sibsp, err := f.FloatColumn(ColSibSp)
	if err != nil {
		return err
	}
	parch, err := f.FloatColumn(ColParch)
	if err != nil {
		return err
	}
	family := make([]float64, len(sibsp))
	alone := make([]float64, len(sibsp))
	for i := range sibsp {
		family[i] = sibsp[i] + parch[i] + 1
		if family[i] == 1 {
			alone[i] = 1
		}
	}
	if err := f.SetFloatColumn(ColFamilySize, family); err != nil {
		return err
	}
	return f.SetFloatColumn(ColIsAlone, alone)
}

func addTitle(f *dataset.Frame) error {
	names, err := f.Column(ColName)
	if err != nil {
		return err
	}
	titles := make([]string, len(names))
	for i, name := range names {
		titles[i] = GroupTitle(ExtractTitle(name))
	}
	return f.SetColumn(ColTitle, titles)
}

// ExtractTitle pulls the honorific out of a passenger name, e.g.
// "Braund, Mr. Owen Harris" yields "Mr". Unmatched names yield "".
func ExtractTitle(name string) string {
	m := titlePattern.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return m[1]
}

// GroupTitle maps rare honorifics to "Rare" and folds spelling variants.
func GroupTitle(title string) string {
	if grouped, ok := titleGroups[title]; ok {
		return grouped
	}
	return title
}

func addAgeBin(f *dataset.Frame) error {
	ages, err := f.FloatColumn(ColAge)
	if err != nil {
		return err
	}
	bins := make([]string, len(ages))
	for i, age := range ages {
		bins[i] = binAge(age)
	}
	return f.SetColumn(ColAgeBin, bins)
}

func binAge(age float64) string {
	if age <= 0 {
		return ""
	}
	for _, b := range ageBins {
		if age <= b.upper {
			return b.label
		}
	}
	return ""
}

func addFareBin(f *dataset.Frame) error {
	fares, err := f.FloatColumn(ColFare)
	if err != nil {
		return err
	}
	q25 := stats.Quantile(fares, 0.25)
	q50 := stats.Quantile(fares, 0.50)
	q75 := stats.Quantile(fares, 0.75)
	bins := make([]string, len(fares))
	for i, fare := range fares {
		switch {
		case fare <= q25:
			bins[i] = "Low"
		case fare <= q50:
			bins[i] = "Medium"
		case fare <= q75:
			bins[i] = "High"
		default:
			bins[i] = "VeryHigh"
		}
	}
	return f.SetColumn(ColFareBin, bins)
}
