// Package match suggests the closest known identifier for a misspelled one.
//
// Identifiers are normalized (CamelCase split, case folded, separators
// dropped) and scored with a normalized Levenshtein similarity, so
// "customer_id", "CustomerID" and "customerId" all compare as equal.
package match
