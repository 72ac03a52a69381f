// Package faction translates legacy faction codes found in older campaign
// saves into the SUCS-aligned codes used by current releases.
package faction

import "sort"

// legacyCodes maps a legacy faction code to its current code.
// Keys are case-sensitive and must never appear as a value of another key.
var legacyCodes = map[string]string{
	// generic and placeholder factions
	"PIND": "I",
	"IND":  "I",
	"CLAN": "C",
	"ABN":  "A",
	"UND":  "U",
	"NONE": "U",

	// Inner Sphere successor and splinter states
	"DoL":  "DL",
	"FRR":  "FR",
	"ROS":  "RS",
	"WOB":  "WB",
	"TamP": "TP",
	"VesM": "VM",
	"StIv": "SIC",
	"TerH": "TH",
	"FedS": "FS",
	"LyrA": "LA",
	"DrC":  "DC",
	"CapC": "CC",
	"FreW": "FWL",

	// Periphery states
	"Mara": "MarA",
	"MOC":  "MC",
	"CIR":  "CF",
	"RWR":  "RW",
	"OutA": "OA",
	"TauC": "TC",
	"AurC": "AC",
	"NieP": "NIOPS",
	"FRA":  "FrR",

	// Clans
	"CWOV": "CWV",
	"CGS":  "CSS",
	"CStR": "CSR",
	"CCoy": "CCY",
	"CBlS": "CBS",
	"CMgo": "CMG",
	"CSAd": "CSA",
}

// Translate returns the current code for a legacy faction code. Codes that are
// not legacy codes, including current codes and the empty string, are returned
// unchanged.
func Translate(code string) string {
	if current, ok := legacyCodes[code]; ok {
		return current
	}
	return code
}

// IsLegacy reports whether code is a legacy faction code and, if so, returns
// its current code.
func IsLegacy(code string) (string, bool) {
	current, ok := legacyCodes[code]
	return current, ok
}

// Legacy returns every legacy code in sorted order.
func Legacy() []string {
	codes := make([]string, 0, len(legacyCodes))
	for code := range legacyCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
