// Package scoring composes a candidate's hard-rule result, soft-preference
// bonus, and area-efficiency into the scalar quality score the solver ranks
// candidates by and reports as solution quality.
package scoring
