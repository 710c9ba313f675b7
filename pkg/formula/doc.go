/*
Package formula reads propositional formulas over single-letter variables and
the connectives ¬ ∧ ∨ → ↔ (ASCII spellings ! & | -> ~ are accepted too).

Trees are stored as arenas: children are referenced by index and precede their
parent, so the canonical labels can be computed in one forward pass.
*/
package formula
