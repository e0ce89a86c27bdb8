package claims

// MatterCode is the result of resolving the ambiguous matter-start code:
// exactly one of the two fields is non-nil.
type MatterCode struct {
	Category  *CategoryCode
	Mediation *MediationType
}

// ResolveMatterCode disambiguates a matter-start code. The wire carries a
// single token that is either a category code (exact match) or a truncated
// mediation type (prefix match); category codes win. The second return is
// false when the token resolves to neither.
func ResolveMatterCode(code string) (MatterCode, bool) {
	if cat, ok := ParseCategoryCode(code); ok {
		return MatterCode{Category: &cat}, true
	}
	if med, ok := ParseMediationType(code); ok {
		return MatterCode{Mediation: &med}, true
	}
	return MatterCode{}, false
}
