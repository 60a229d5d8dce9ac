// Package family turns a loaded dataset into the two lookup tables consumed by
// the automation tool.
//
// Build joins each catalog species with its four bracket scores, maps every
// normalized species name to a family ID, and renders one text block per
// family that has at least one ranked member. Within a block, members appear
// in reverse catalog order. Build is pure; persisting the result is the job of
// package prepare.
package family
