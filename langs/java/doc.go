// Package java renders token streams as Java source.
//
// Import lines are deduplicated per class with the first-seen short name
// winning; colliding classes render fully qualified. java.lang is implicit
// and never imported. String literals escape everything outside printable
// ASCII as UTF-16 code units, surrogate pairs included, matching how the
// compiler models literals.
package java
