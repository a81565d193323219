// Package validation provides the field rules applied to decoded import records.
//
// Each record type lists its rules explicitly, in field order, as a slice of Rule
// values. A rule is evaluated when it is constructed; Check combines the results
// with a logical AND. There is no partial result: a record passes every rule or
// is rejected as a whole.
//
// # Usage
//
//	rules := []validation.Rule{
//	    validation.Required("Username", dto.Username),
//	    validation.Length("Username", dto.Username, 3, 20),
//	    validation.Range("Age", dto.Age, 3, 103),
//	}
//	if !validation.Check(rules...) {
//	    // reject
//	}
package validation
