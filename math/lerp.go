// SPDX-License-Identifier: GPL-2.0-or-later

package math

// Lerp computes a weighted average between a and b.
func Lerp[K Number](a, b, frac K) K {
	return a + frac*(b-a)
}
