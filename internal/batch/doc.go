// Package batch runs the match scan over a numbered series of image files.
//
// Inputs are named Prefix + N + Ext for N from First to Last, read from
// InputDir. Each result is written to OutputDir under the same name:
//
//	../input/rhinozelfant1.png  ->  ../output/rhinozelfant1.png
//	../input/rhinozelfant2.png  ->  ../output/rhinozelfant2.png
//	...
//
// Every file is processed even when an earlier one fails. Run reports each
// failure in the returned Summary and joins them into a single error.
package batch
