package system

import (
	"fmt"
	"sort"
	"strings"
)

// systemAllocators maps normalized model labels to constructors. Labels
// are matched case- and punctuation-insensitively, so "SRK-Peneloux-EOS",
// "srk peneloux" and "SrkPeneloux" all resolve to the same system.
var systemAllocators = map[string]func(T, P float64) SystemInterface{
	"srk":               func(T, P float64) SystemInterface { return NewSystemSrkEos(T, P) },
	"srkpeneloux":       func(T, P float64) SystemInterface { return NewSystemSrkPenelouxEos(T, P) },
	"srkmc":             func(T, P float64) SystemInterface { return NewSystemSrkMathiasCopeman(T, P) },
	"srktwucoon":        func(T, P float64) SystemInterface { return NewSystemSrkTwuCoonEos(T, P) },
	"srktwucoonparam":   func(T, P float64) SystemInterface { return NewSystemSrkTwuCoonParamEos(T, P) },
	"srktwucoonstatoil": func(T, P float64) SystemInterface { return NewSystemSrkTwuCoonStatoilEos(T, P) },
	"soreidewhitson":    func(T, P float64) SystemInterface { return NewSystemSoreideWhitson(T, P) },
	"rk":                func(T, P float64) SystemInterface { return NewSystemRkEos(T, P) },
	"pr":                func(T, P float64) SystemInterface { return NewSystemPrEos(T, P) },
	"pr78":              func(T, P float64) SystemInterface { return NewSystemPrEos1978(T, P) },
	"prmc":              func(T, P float64) SystemInterface { return NewSystemPrMathiasCopeman(T, P) },
	"prpeneloux":        func(T, P float64) SystemInterface { return NewSystemPrPenelouxEos(T, P) },
	"tst":               func(T, P float64) SystemInterface { return NewSystemTSTEos(T, P) },
	"gerg2004":          func(T, P float64) SystemInterface { return NewSystemGERG2004Eos(T, P) },
	"spanwagner":        func(T, P float64) SystemInterface { return NewSystemSpanWagnerEos(T, P) },
	"cpasrk":            func(T, P float64) SystemInterface { return NewSystemSrkCPA(T, P) },
	"electrolytecpa":    func(T, P float64) SystemInterface { return NewSystemElectrolyteCPA(T, P) },
	"nrtl":              func(T, P float64) SystemInterface { return NewSystemNRTL(T, P) },
	"wilson":            func(T, P float64) SystemInterface { return NewSystemWilson(T, P) },
	"unifac":            func(T, P float64) SystemInterface { return NewSystemUNIFAC(T, P) },
	"pitzer":            func(T, P float64) SystemInterface { return NewSystemPitzer(T, P) },
}

func normalizeLabel(label string) string {
	label = strings.ToLower(label)
	for _, cut := range []string{"-", "_", " ", "eos", "gemodel"} {
		label = strings.ReplaceAll(label, cut, "")
	}
	return label
}

// NewSystem instantiates a system from its model label. Unknown labels
// panic with the candidate list.
func NewSystem(label string, T, P float64) (s SystemInterface) {
	var (
		alloc func(T, P float64) SystemInterface
		ok    bool
		err   error
	)
	if alloc, ok = systemAllocators[normalizeLabel(label)]; !ok {
		err = fmt.Errorf("unable to use system model named %s, available: %v", label, ModelNames())
		panic(err)
	}
	s = alloc(T, P)
	return
}

// HasModel reports whether a model label resolves.
func HasModel(label string) bool {
	_, ok := systemAllocators[normalizeLabel(label)]
	return ok
}

// ModelNames returns the sorted registry labels.
func ModelNames() (names []string) {
	names = make([]string, 0, len(systemAllocators))
	for k := range systemAllocators {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}
