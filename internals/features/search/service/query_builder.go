// internals/features/search/service/query_builder.go
package service

import (
	"fmt"
	"sort"
	"strings"

	"schoolsg_backend/internals/helpers/errs"
)

/* =====================
   Sanitization
===================== */

const (
	// Criterion values are truncated to this many characters before use.
	maxCriterionLen = 100
	// Result cap for every advanced search.
	MaxResults = 100
)

// Placeholder strings the dataset uses for "no data". Treated as absent on
// input and filtered out of matched columns.
var placeholderValues = []string{"NA", "N/A", "NIL", "NONE", "-"}

func IsPlaceholder(v string) bool {
	t := strings.ToUpper(strings.TrimSpace(v))
	for _, p := range placeholderValues {
		if t == p {
			return true
		}
	}
	return t == ""
}

// SanitizeCriteria drops unrecognized keys, trims values, treats
// placeholder/blank values as absent, and truncates to maxCriterionLen.
func SanitizeCriteria(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if _, ok := fieldSpecs[k]; !ok {
			continue
		}
		if IsPlaceholder(v) {
			continue
		}
		t := strings.TrimSpace(v)
		// Rune-wise, not byte-wise: slicing bytes could split a multi-byte
		// character and hand Postgres an invalid-UTF-8 bind parameter.
		if r := []rune(t); len(r) > maxCriterionLen {
			t = string(r[:maxCriterionLen])
		}
		out[k] = t
	}
	return out
}

/* =====================
   Field table
   One row per recognized search field: column(s), match mode, joins.
===================== */

type matchMode int

const (
	// case-insensitive substring, column guarded non-null/non-blank/non-placeholder
	matchContains matchMode = iota
	// raw equality, case-sensitive (indicator flags, postal_code)
	matchExact
	// case-insensitive equality (codes)
	matchExactFold
	// substring against any of several columns, each guarded, OR-combined
	matchAnyContains
)

type joinKey int

const (
	joinGeneralInfo joinKey = iota
	joinSubjects
	joinCCAs
	joinProgrammes
	joinDistinctives
)

// Fixed emission order so the generated SQL is deterministic.
var joinOrder = []joinKey{joinGeneralInfo, joinSubjects, joinCCAs, joinProgrammes, joinDistinctives}

var joinSQL = map[joinKey]string{
	joinGeneralInfo:  `LEFT JOIN school_general_infos g ON g.normalized_name = lower(btrim(s.school_name))`,
	joinSubjects:     `JOIN school_subjects ss ON ss.school_id = s.school_id JOIN subjects subj ON subj.subject_id = ss.subject_id`,
	joinCCAs:         `JOIN school_ccas sc ON sc.school_id = s.school_id JOIN ccas cca ON cca.cca_id = sc.cca_id`,
	joinProgrammes:   `JOIN school_programmes sp ON sp.school_id = s.school_id JOIN programmes prog ON prog.programme_id = sp.programme_id`,
	joinDistinctives: `JOIN school_distinctives sd ON sd.school_id = s.school_id JOIN distinctive_programmes dist ON dist.distinctive_id = sd.distinctive_id`,
}

type fieldSpec struct {
	columns []string
	mode    matchMode
	joins   []joinKey
}

var fieldSpecs = map[string]fieldSpec{
	// School base table
	"school_name":    {columns: []string{"s.school_name"}, mode: matchContains},
	"address":        {columns: []string{"s.address"}, mode: matchContains},
	"postal_code":    {columns: []string{"s.postal_code"}, mode: matchExact},
	"zone_code":      {columns: []string{"s.zone_code"}, mode: matchExactFold},
	"mainlevel_code": {columns: []string{"s.mainlevel_code"}, mode: matchExactFold},
	"principal_name": {columns: []string{"s.principal_name"}, mode: matchContains},

	// Extended profile (general info)
	"email_address": {columns: []string{"g.email_address"}, mode: matchContains, joins: []joinKey{joinGeneralInfo}},
	"telephone_no":  {columns: []string{"g.telephone_no"}, mode: matchContains, joins: []joinKey{joinGeneralInfo}},
	"url_address":   {columns: []string{"g.url_address"}, mode: matchContains, joins: []joinKey{joinGeneralInfo}},
	"bus_desc":      {columns: []string{"g.bus_desc"}, mode: matchContains, joins: []joinKey{joinGeneralInfo}},
	"mrt_desc":      {columns: []string{"g.mrt_desc"}, mode: matchContains, joins: []joinKey{joinGeneralInfo}},
	"vp_name": {
		columns: []string{"g.vp_name1", "g.vp_name2", "g.vp_name3", "g.vp_name4", "g.vp_name5", "g.vp_name6"},
		mode:    matchAnyContains, joins: []joinKey{joinGeneralInfo},
	},
	"mothertongue_code": {
		columns: []string{"g.mothertongue_code1", "g.mothertongue_code2", "g.mothertongue_code3"},
		mode:    matchAnyContains, joins: []joinKey{joinGeneralInfo},
	},
	"type_code":      {columns: []string{"g.type_code"}, mode: matchExactFold, joins: []joinKey{joinGeneralInfo}},
	"nature_code":    {columns: []string{"g.nature_code"}, mode: matchExactFold, joins: []joinKey{joinGeneralInfo}},
	"session_code":   {columns: []string{"g.session_code"}, mode: matchExactFold, joins: []joinKey{joinGeneralInfo}},
	"dgp_code":       {columns: []string{"g.dgp_code"}, mode: matchExactFold, joins: []joinKey{joinGeneralInfo}},
	"autonomous_ind": {columns: []string{"g.autonomous_ind"}, mode: matchExact, joins: []joinKey{joinGeneralInfo}},
	"gifted_ind":     {columns: []string{"g.gifted_ind"}, mode: matchExact, joins: []joinKey{joinGeneralInfo}},
	"ip_ind":         {columns: []string{"g.ip_ind"}, mode: matchExact, joins: []joinKey{joinGeneralInfo}},
	"sap_ind":        {columns: []string{"g.sap_ind"}, mode: matchExact, joins: []joinKey{joinGeneralInfo}},

	// Catalogs
	"subject_desc":        {columns: []string{"subj.subject_desc"}, mode: matchContains, joins: []joinKey{joinSubjects}},
	"cca_generic_name":    {columns: []string{"cca.cca_generic_name"}, mode: matchContains, joins: []joinKey{joinCCAs}},
	"cca_customized_name": {columns: []string{"sc.cca_customized_name"}, mode: matchContains, joins: []joinKey{joinCCAs}},
	"cca_section":         {columns: []string{"sc.cca_section"}, mode: matchExactFold, joins: []joinKey{joinCCAs}},
	"moe_programme_desc":  {columns: []string{"prog.moe_programme_desc"}, mode: matchContains, joins: []joinKey{joinProgrammes}},
	"alp_domain":          {columns: []string{"dist.alp_domain"}, mode: matchContains, joins: []joinKey{joinDistinctives}},
	"alp_title":           {columns: []string{"dist.alp_title"}, mode: matchContains, joins: []joinKey{joinDistinctives}},
	"llp_domain1":         {columns: []string{"dist.llp_domain1"}, mode: matchContains, joins: []joinKey{joinDistinctives}},
	"llp_title1":          {columns: []string{"dist.llp_title1"}, mode: matchContains, joins: []joinKey{joinDistinctives}},
}

/* =====================
   Builder
===================== */

// selectColumns lists the school columns explicitly so DISTINCT
// deduplicates by school identity even when one-to-many joins fan out.
const selectColumns = `s.school_id, s.school_name, s.address, s.postal_code, s.zone_code, s.mainlevel_code, s.principal_name, s.school_created_at, s.school_updated_at`

type BuiltQuery struct {
	SQL      string
	Args     []any
	Criteria map[string]string // surviving criteria, post-sanitization
}

// columnGuard excludes null/blank/placeholder column values from substring
// matches, so "NA" in the data never satisfies a real criterion.
func columnGuard(col string) string {
	return fmt.Sprintf(
		`(%s IS NOT NULL AND btrim(%s) <> '' AND upper(btrim(%s)) NOT IN ('NA','N/A','NIL','NONE','-')`,
		col, col, col,
	)
}

func containsFragment(col string) string {
	return columnGuard(col) + fmt.Sprintf(` AND %s ILIKE ?)`, col)
}

// BuildAdvancedSearch folds the sanitized criteria over the field table
// into one parameterized query: WHERE fragments AND-combined, joins added
// at most once each, ordered by school name, capped at MaxResults.
func BuildAdvancedSearch(raw map[string]string) (*BuiltQuery, error) {
	criteria := SanitizeCriteria(raw)
	if len(criteria) == 0 {
		return nil, errs.InvalidInput("no usable search criteria supplied")
	}

	// Deterministic field order → stable SQL and bind-parameter order.
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	joinNeeded := map[joinKey]bool{}
	var conds []string
	var args []any

	for _, k := range keys {
		spec := fieldSpecs[k]
		v := criteria[k]
		for _, j := range spec.joins {
			joinNeeded[j] = true
		}

		switch spec.mode {
		case matchContains:
			conds = append(conds, containsFragment(spec.columns[0]))
			args = append(args, "%"+v+"%")
		case matchExact:
			conds = append(conds, fmt.Sprintf(`%s = ?`, spec.columns[0]))
			args = append(args, v)
		case matchExactFold:
			conds = append(conds, fmt.Sprintf(`lower(%s) = lower(?)`, spec.columns[0]))
			args = append(args, v)
		case matchAnyContains:
			parts := make([]string, 0, len(spec.columns))
			for _, col := range spec.columns {
				parts = append(parts, containsFragment(col))
				args = append(args, "%"+v+"%")
			}
			conds = append(conds, "("+strings.Join(parts, " OR ")+")")
		}
	}

	var b strings.Builder
	b.WriteString("SELECT DISTINCT ")
	b.WriteString(selectColumns)
	b.WriteString(" FROM schools s")
	for _, j := range joinOrder {
		if joinNeeded[j] {
			b.WriteString(" ")
			b.WriteString(joinSQL[j])
		}
	}
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(conds, " AND "))
	b.WriteString(fmt.Sprintf(" ORDER BY s.school_name ASC LIMIT %d", MaxResults))

	return &BuiltQuery{SQL: b.String(), Args: args, Criteria: criteria}, nil
}
