package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"gymfinder/internal/domain"
)

/********** alias registries (single source of truth) **********/

var gymAliases = map[string][]string{
	"name":        {"name", "gym_name", "title", "venue_name"},
	"local_name":  {"local_name", "localName", "localized_name", "name_local"},
	"address":     {"address", "full_address", "address_line", "location.address"},
	"description": {"description", "intro", "about", "summary"},
	"city":        {"city", "location.city"},
	"district":    {"district", "area", "location.district"},
	"country":     {"country", "location.country"},
	"type":        {"type", "venue_type", "gym_type", "category"},
}

var scheduleAliases = []string{"schedule", "opening_hours", "business_hours", "hours"}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, key string) *string {
	for _, p := range gymAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

// getFloatFlexible: number from several paths (float64/int/string like "4,8").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// getBoolFlexible: bool from several paths (bool/number/string).
func getBoolFlexible(m map[string]any, paths ...string) bool {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case bool:
			return v
		case float64:
			return v != 0
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
		}
	}
	return false
}

// firstSliceStrings: accept []any with either strings or {name/url} objects.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					out = append(out, n)
					continue
				}
				if u, ok := t["url"].(string); ok && u != "" {
					out = append(out, u)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** mapping **********/

// mapGym maps a loosely-typed upstream payload into a Venue. Anomalous
// fields degrade silently: out-of-range ratings clamp, unknown types fall
// back to comprehensive, unparseable schedule days are dropped.
func mapGym(id int64, m map[string]any) domain.Venue {
	v := domain.Venue{
		ID:          id,
		LocalName:   firstNonEmptyAlias(m, "local_name"),
		Address:     firstNonEmptyAlias(m, "address"),
		Description: firstNonEmptyAlias(m, "description"),
		City:        firstNonEmptyAlias(m, "city"),
		District:    firstNonEmptyAlias(m, "district"),
		Country:     firstNonEmptyAlias(m, "country"),
		Certified:   getBoolFlexible(m, "certified", "is_certified"),
		Verified:    getBoolFlexible(m, "verified", "is_verified"),
		Featured:    getBoolFlexible(m, "featured", "is_featured"),
		Programs:    firstSliceStrings(m, "programs", "program_types", "courses"),
		Tags:        firstSliceStrings(m, "tags", "labels"),
		Images:      firstSliceStrings(m, "images", "photos", "image_urls"),
		Schedule:    mapSchedule(m),
	}

	if n := firstNonEmptyAlias(m, "name"); n != nil {
		v.Name = *n
	}
	v.Type = normalizeType(deref(firstNonEmptyAlias(m, "type")))

	if lat := getFloatFlexible(m, "lat", "latitude", "location.lat"); lat != nil {
		if lng := getFloatFlexible(m, "lng", "lon", "longitude", "location.lng"); lng != nil {
			v.Lat, v.Lng = lat, lng
		}
	}
	if r := getFloatFlexible(m, "rating", "score", "average_rating"); r != nil {
		v.Rating = clampRating(*r)
	}
	if rc := getFloatFlexible(m, "review_count", "reviews", "reviewCount"); rc != nil && *rc > 0 {
		v.ReviewCount = int(*rc)
	}

	if raw, err := json.Marshal(m); err == nil {
		v.RawJSON = raw
	}
	return v
}

// mapSchedule normalizes the upstream hours object to the seven lowercase
// day keys. Non-string values and unknown keys are dropped.
func mapSchedule(m map[string]any) domain.WeeklySchedule {
	days := map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true,
		"thursday": true, "friday": true, "saturday": true, "sunday": true,
	}
	for _, path := range scheduleAliases {
		obj, ok := lookupAny(m, path).(map[string]any)
		if !ok {
			continue
		}
		out := domain.WeeklySchedule{}
		for k, raw := range obj {
			key := strings.ToLower(strings.TrimSpace(k))
			s, ok := raw.(string)
			if !ok || !days[key] {
				continue
			}
			out[key] = s
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func normalizeType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case domain.TypeCertified:
		return domain.TypeCertified
	case domain.TypeSpecialty:
		return domain.TypeSpecialty
	default:
		return domain.TypeComprehensive
	}
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
