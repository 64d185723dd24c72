// Package alphabet maps between the 26 letters A-Z and their 1-based
// positions, and folds positions and indices that stepped one wrap past
// either end of the ring back into range.
package alphabet
