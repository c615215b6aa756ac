package metrics

import (
	"fmt"
	"strings"

	"github.com/gardar/ocreval/pkg/textproc"
)

// registry maps every kind to its accepted names, canonical order
var registry = []struct {
	kind  Kind
	names []string
}{
	{Characters, []string{"Cs", "Characters"}},
	{Letters, []string{"Ls", "Letters"}},
	{Words, []string{"Ws", "Words"}},
	{BagOfWords, []string{"BoWs", "BagOfWords"}},
	{IRPrecision, []string{"IRPre", "Pre", "Precision"}},
	{IRRecall, []string{"IRRec", "Rec", "Recall"}},
	{IRFMeasure, []string{"IRFMeasure", "FM"}},
}

// Names returns all recognized metric names.
func Names() []string {
	var names []string
	for _, r := range registry {
		names = append(names, r.names...)
	}
	return names
}

// Lookup resolves a case sensitive metric name.
func Lookup(name string) (Kind, error) {
	for _, r := range registry {
		for _, n := range r.names {
			if n == name {
				return r.kind, nil
			}
		}
	}
	return 0, fmt.Errorf("%w %q, recognized: %s", ErrUnknownMetric, name, strings.Join(Names(), ", "))
}

// Parse builds metrics from a comma separated list of names such as "Cs,Ls".
// Any unknown name rejects the whole list.
func Parse(spec string, norm textproc.NormalizationForm, language string) ([]Metric, error) {
	var result []Metric
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		kind, err := Lookup(token)
		if err != nil {
			return nil, err
		}
		result = append(result, New(kind, norm, language))
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no metric given, recognized: %s", ErrUnknownMetric, strings.Join(Names(), ", "))
	}
	return result, nil
}
