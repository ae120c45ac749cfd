package numbers

import "strings"

// CallerType is the best-guess categorization of who is likely calling,
// derived from static prefix tables. Identical input always yields the
// identical classification.
type CallerType struct {
	Type       string   `json:"type"`
	Confidence string   `json:"confidence"`
	Category   string   `json:"category"`
	Details    []string `json:"details,omitempty"`
}

// Confidence labels
const (
	ConfidenceCertain = "certain"
	ConfidenceHigh    = "high"
	ConfidenceMedium  = "medium"
	ConfidenceLow     = "low"
)

// Category labels
const (
	CategoryPublicAgency  = "public agency"
	CategoryBusiness      = "business"
	CategoryIndividual    = "individual"
	CategoryMixed         = "business or individual"
	CategorySpecial       = "special"
	CategoryInternational = "international"
	CategoryUnknown       = "unknown"
	CategoryOther         = "other"
)

type prefixRule struct {
	prefix string
	label  string
}

// Representative switchboard prefixes of government districts. Matched on the
// normalized number, longest rules first where prefixes overlap.
var governmentPrefixes = []prefixRule{
	{"033581", "central government offices (Kasumigaseki district)"},
	{"035253", "health and education ministry district"},
	{"033580", "National Police Agency district"},
	{"035321", "Tokyo metropolitan government"},
	{"066941", "Osaka prefectural government district"},
}

var bankPrefixes = []prefixRule{
	{"012086", "MUFG Bank support line"},
	{"012077", "SMBC support line"},
	{"012065", "Mizuho Bank support line"},
	{"012039", "Japan Post Bank support line"},
}

var areaCodes = []prefixRule{
	{"052", "Nagoya"},
	{"011", "Sapporo"},
	{"092", "Fukuoka"},
	{"075", "Kyoto"},
	{"03", "Tokyo"},
	{"06", "Osaka"},
}

var emergencyNumbers = map[string]struct{}{
	"110": {},
	"119": {},
	"118": {},
}

// IsEmergency reports whether the normalized number is a national emergency
// dispatch number.
func IsEmergency(normalized string) bool {
	_, ok := emergencyNumbers[normalized]
	return ok
}

// EmergencyNumbers lists the recognized emergency dispatch numbers.
func EmergencyNumbers() []string {
	return []string{"110", "118", "119"}
}

// ClassifyCaller walks the caller-type rule chain over the normalized number.
// First match wins; numbers that match nothing come back as unknown.
func ClassifyCaller(normalized string) CallerType {
	if IsEmergency(normalized) {
		return CallerType{
			Type:       "emergency number",
			Confidence: ConfidenceCertain,
			Category:   CategoryPublicAgency,
			Details:    []string{"police, fire or coast guard dispatch"},
		}
	}

	for _, r := range governmentPrefixes {
		if strings.HasPrefix(normalized, r.prefix) {
			return CallerType{
				Type:       "government office",
				Confidence: ConfidenceHigh,
				Category:   CategoryPublicAgency,
				Details:    []string{r.label},
			}
		}
	}

	for _, r := range bankPrefixes {
		if strings.HasPrefix(normalized, r.prefix) {
			return CallerType{
				Type:       "financial institution",
				Confidence: ConfidenceMedium,
				Category:   CategoryBusiness,
				Details: []string{
					r.label,
					"verify the caller is genuine before sharing anything",
				},
			}
		}
	}

	switch {
	case strings.HasPrefix(normalized, "0120"), strings.HasPrefix(normalized, "0800"):
		return CallerType{
			Type:       "customer support line",
			Confidence: ConfidenceMedium,
			Category:   CategoryBusiness,
			Details: []string{
				"toll-free line (free to call)",
				"commonly used for company outreach",
			},
		}
	case strings.HasPrefix(normalized, "0570"):
		return CallerType{
			Type:       "navi-dial service",
			Confidence: ConfidenceMedium,
			Category:   CategoryBusiness,
			Details: []string{
				"caller pays the charges (can be expensive)",
				"typically a corporate support center",
			},
		}
	case strings.HasPrefix(normalized, "050"):
		return CallerType{
			Type:       "IP-phone user",
			Confidence: ConfidenceLow,
			Category:   CategoryUnknown,
			Details: []string{
				"could be an individual or a company",
				"IP numbers are easy to obtain anonymously",
				"frequently abused for scam calls",
			},
		}
	case strings.HasPrefix(normalized, "090"), strings.HasPrefix(normalized, "080"), strings.HasPrefix(normalized, "070"):
		return CallerType{
			Type:       "mobile phone",
			Confidence: ConfidenceHigh,
			Category:   CategoryIndividual,
			Details: []string{
				"personal mobile contract",
				"occasionally a corporate handset",
			},
		}
	case strings.HasPrefix(normalized, "020"):
		return CallerType{
			Type:       "pager/M2M device",
			Confidence: ConfidenceHigh,
			Category:   CategorySpecial,
			Details:    []string{"machine-to-machine or IoT traffic"},
		}
	case strings.HasPrefix(normalized, "0"):
		if area := Area(normalized); area != "" {
			return CallerType{
				Type:       "landline",
				Confidence: ConfidenceMedium,
				Category:   CategoryMixed,
				Details: []string{
					"area: " + area,
					"corporate office or private home",
				},
			}
		}
		return CallerType{
			Type:       "landline",
			Confidence: ConfidenceLow,
			Category:   CategoryUnknown,
		}
	case strings.HasPrefix(normalized, "+"):
		return CallerType{
			Type:       "international caller",
			Confidence: ConfidenceCertain,
			Category:   CategoryInternational,
			Details: []string{
				"incoming from overseas",
				"watch out for international call scams",
			},
		}
	}

	return CallerType{
		Type:       "unknown",
		Confidence: ConfidenceLow,
		Category:   CategoryOther,
	}
}

// Area resolves the city behind a landline area code, or "" when unknown.
func Area(normalized string) string {
	for _, r := range areaCodes {
		if strings.HasPrefix(normalized, r.prefix) {
			return r.label
		}
	}
	return ""
}

// NumberType buckets a normalized number into its line type.
func NumberType(normalized string) string {
	switch {
	case strings.HasPrefix(normalized, "0120"), strings.HasPrefix(normalized, "0800"):
		return "toll-free"
	case strings.HasPrefix(normalized, "0570"):
		return "navi-dial"
	case strings.HasPrefix(normalized, "050"):
		return "IP phone"
	case strings.HasPrefix(normalized, "090"), strings.HasPrefix(normalized, "080"), strings.HasPrefix(normalized, "070"):
		return "mobile"
	case strings.HasPrefix(normalized, "0"):
		return "landline"
	case strings.HasPrefix(normalized, "+"):
		return "international"
	}
	return "unknown"
}
