// Package diagnostic collects problems found while validating declarative
// model metadata.
//
// Errors make a schema unusable; warnings describe metadata that is legal
// but probably not what the author meant (a flag with no effect, an
// ambiguous order).
package diagnostic
