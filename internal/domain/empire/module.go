package empire

import "strings"

// productionMacroMarker identifies production modules among the construction
// entries of a station. Storage, dock and defence module macros never carry it.
const productionMacroMarker = "prod_"

// ProductionModule is a functional unit within a station. Only production
// modules contribute to rate aggregation; storage and infrastructure modules
// are kept for completeness but carry no output ware.
type ProductionModule struct {
	ID         string
	Macro      string
	OutputWare *Ware
	Output     *TradeResource
	Inputs     []TradeResource
}

// IsProduction reports whether the module's macro marks it as a production
// module.
func (m *ProductionModule) IsProduction() bool {
	return strings.Contains(strings.ToLower(m.Macro), productionMacroMarker)
}

// macroOriginPrefixes are the faction origin tokens that may precede the ware
// name inside a production macro ("prod_arg_hullparts_macro" -> "hullparts").
var macroOriginPrefixes = []string{
	"prod_gen_", "prod_arg_", "prod_par_", "prod_tel_", "prod_spl_", "prod_ter_", "prod_bor_", "prod_",
}

// macroSuffixes are the size/variant tokens that may follow the ware name.
var macroSuffixes = []string{"_macro", "_01", "_02", "_03"}

// WareIDFromMacro derives a ware ID from a production-module macro name by
// stripping the known origin prefixes and variant suffixes. Returns "" for
// macros that are not production modules or strip down to nothing; callers
// skip those entries.
func WareIDFromMacro(macro string) string {
	macro = strings.ToLower(macro)
	if !strings.Contains(macro, productionMacroMarker) {
		return ""
	}
	for _, prefix := range macroOriginPrefixes {
		macro = strings.ReplaceAll(macro, prefix, "")
	}
	for _, suffix := range macroSuffixes {
		macro = strings.ReplaceAll(macro, suffix, "")
	}
	return strings.TrimSpace(macro)
}
