// Package inspect answers questions about a single image file from its
// header alone: which format it is, and whether it is a given format.
package inspect
