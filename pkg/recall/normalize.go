package recall

import (
	"fmt"
	"strconv"
	"strings"
)

// Alias lists for fields the registry spells inconsistently. The API mixes
// PascalCase and camelCase across endpoints; the first alias present in an
// entry wins.
var (
	aliasesCampaignNumber = []string{"NHTSACampaignNumber", "nhtsaCampaignNumber"}
	aliasesReportDate     = []string{"ReportReceivedDate", "reportReceivedDate"}
	aliasesModelYear      = []string{"ModelYear", "modelYear"}
	aliasesMake           = []string{"Make", "make"}
	aliasesModel          = []string{"Model", "model"}
	aliasesMfrRecall      = []string{"mfrRecallNumber", "MfrRecallNumber"}
	aliasesOverTheAir     = []string{"overTheAirUpdate", "overTheAirUpdateYn"}
	aliasesParkOutside    = []string{"parkOutSide", "parkOutside", "parkOutsideYn"}
)

// cleanValue normalizes a raw payload value into a string field.
//
// nil becomes absent (""). Everything else is stringified and trimmed;
// values that reduce to nothing or to one of the registry's placeholder
// tokens ("null", "none", "not applicable", case-insensitive) are absent too.
func cleanValue(v any) string {
	if v == nil {
		return ""
	}
	s := strings.TrimSpace(stringify(v))
	switch strings.ToLower(s) {
	case "", "null", "none", "not applicable":
		return ""
	}
	return s
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		// JSON numbers decode as float64; render 2019 as "2019", not "2019.00".
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(v)
	}
}

// parseBool coerces the registry's mixed boolean representations into a
// tri-state value. Literal booleans pass through, 1/0 map to true/false, and
// the usual yes/no token spellings are accepted case-insensitively. Anything
// unrecognized resolves to nil (unknown), never to false.
func parseBool(v any) *bool {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return &t
	case float64:
		if t == 1 {
			return boolPtr(true)
		}
		if t == 0 {
			return boolPtr(false)
		}
	case int:
		if t == 1 {
			return boolPtr(true)
		}
		if t == 0 {
			return boolPtr(false)
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "y", "yes", "true", "t", "1":
			return boolPtr(true)
		case "n", "no", "false", "f", "0":
			return boolPtr(false)
		}
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }

// firstPresent returns the value of the first alias whose key exists in the
// entry with a non-null value. JSON null counts as absent so a later alias
// can still supply the field.
func firstPresent(entry map[string]any, aliases ...string) any {
	for _, key := range aliases {
		if v, ok := entry[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func fieldString(entry map[string]any, aliases ...string) string {
	return cleanValue(firstPresent(entry, aliases...))
}

func fieldBool(entry map[string]any, aliases ...string) *bool {
	return parseBool(firstPresent(entry, aliases...))
}

// recordFromEntry maps one raw result entry into a Record. Construction
// never fails: malformed or missing fields simply end up absent, and the
// complete entry is retained in AdditionalFields.
func recordFromEntry(entry map[string]any) *Record {
	return &Record{
		Manufacturer:       fieldString(entry, "Manufacturer"),
		CampaignNumber:     fieldString(entry, aliasesCampaignNumber...),
		ActionNumber:       fieldString(entry, "NHTSAActionNumber"),
		ReportReceivedDate: fieldString(entry, aliasesReportDate...),
		Component:          fieldString(entry, "Component"),
		Summary:            fieldString(entry, "Summary"),
		Consequence:        fieldString(entry, "Consequence"),
		Remedy:             fieldString(entry, "Remedy"),
		Notes:              fieldString(entry, "Notes"),
		ModelYear:          fieldString(entry, aliasesModelYear...),
		Make:               fieldString(entry, aliasesMake...),
		Model:              fieldString(entry, aliasesModel...),
		MfrRecallNumber:    fieldString(entry, aliasesMfrRecall...),
		OverTheAirUpdate:   fieldBool(entry, aliasesOverTheAir...),
		ParkIt:             fieldBool(entry, "parkIt"),
		ParkOutside:        fieldBool(entry, aliasesParkOutside...),
		AdditionalFields:   entry,
	}
}
