// Package typography declares how rendered Markdown is styled and serializes
// those declarations to CSS.
//
// A Configuration maps heading levels, element kinds and free-form CSS
// selectors to a Style. Lookups are exact: an h3 does not inherit from h2,
// and a list item does not inherit from its list. Two configurations merge
// key by key, the incoming side winning field by field:
//
//	base, _ := typography.Preset("default")
//	cfg := base.Merge(typography.Configuration{
//		Headings: map[int]typography.Style{
//			1: {Font: &typography.Font{Weight: typography.WeightBold}},
//		},
//	})
//	css := cfg.CSS()
package typography
