// Package fermi implements a calculator for Fermi estimation models.
//
// A model is a sequence of assignments evaluated top to bottom:
//
//	# Back-of-the-envelope revenue
//	users = 10K 50K
//	price = 20
//	revenue = users * price  # yearly
//
// Two numbers side by side, like "10K 50K", denote an uncertainty range: a
// uniform distribution approximated by Monte Carlo samples. Arithmetic mixes
// scalars and distributions transparently, so "users * price" scales every
// sample by 20. The magnitude suffixes K, M, and B multiply a literal by a
// thousand, a million, and a billion.
package fermi
